// Package defectmesh builds the final closed surface the dislocation
// network bounds: the interface mesh with every face swept by a resolved
// (non-dangling) circuit removed unless the face carries the primary-trace
// flag, and the resulting holes
// capped by one triangle fan per still-dangling circuit (spec.md §4.6).
//
// It owns its own half-edge arena (Vertex/Face/HalfEdge), grounded on
// interfacemesh's builder/stitchOpposites shape (interfacemesh/build.go) —
// the defect mesh is a distinct manifold (it adds cap vertices the
// interface mesh never had), so it does not reuse interfacemesh.Mesh's
// types directly.
package defectmesh
