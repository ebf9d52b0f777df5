// Package vec3 provides the 3D Cartesian vector and point arithmetic shared
// by every later DXA stage: simulation-cell wrapping, cluster transitions,
// elastic-mapping ideal vectors, and dislocation line geometry all build on
// top of it.
//
// The package offers:
//   - Vector3 / Point3: plain float64 triples with value semantics (no
//     pointers, no shared backing arrays — every operation returns a new
//     value, matching how the rest of the module passes geometry around).
//   - Arithmetic: Add, Sub, Scale, Negate, Dot, Cross, Length, LengthSquared.
//   - ApproxEqual: component-wise tolerance comparison, used throughout the
//     module wherever spec.md calls for a numeric epsilon test.
//
// Complexity: every operation is O(1); there is no allocation beyond the
// returned value.
package vec3
