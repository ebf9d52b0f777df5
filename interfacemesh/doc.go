// Package interfacemesh builds the half-edge manifold separating
// elastically-compatible ("good") tetrahedra from incompatible ("bad") ones
// (spec.md §4.4): classifyTetrahedra labels every primary cell, createMesh
// emits one face per good/bad boundary, and shared vertices where more than
// one manifold sheet meets are split so each sheet owns its own vertex.
//
// Layering note: the data model (spec.md §3) lists an optional Burgers
// circuit pointer on both faces ("swept by") and half-edges ("circuit
// membership + nextCircuitEdge"). Baking a *dislocation.BurgersCircuit
// field into Vertex/Face/HalfEdge here would force this package to import
// package dislocation, which itself must import interfacemesh to walk the
// mesh — a cycle. Instead, package dislocation keeps its own side tables
// (map[*Face]*BurgersCircuit, map[*HalfEdge]*BurgersCircuit) alongside the
// mesh, the same way package pathfinder keeps its BFS visited set local to
// one call rather than mutating shared atom records.
package interfacemesh
