// Package dxacore is the root of the Dislocation Extraction Algorithm
// (DXA) core: a library (not a program) that turns atomic coordinates and
// a Delaunay tessellation into a cluster graph, an interface mesh, and a
// dislocation network.
//
// The library has no package of its own beyond this doc comment — start
// at package dxa, whose Run function is the single pipeline entry point
// described in spec.md and SPEC_FULL.md. Every other package
// (vec3, mat3, structure, simcell, params, progress, clustergraph,
// pathfinder, saglue, tessellation, interfacemesh, planardefect,
// latticefamily, dislocation, defectmesh) is a component dxa.Run wires
// together; see each package's own doc.go and DESIGN.md for how.
package dxacore
