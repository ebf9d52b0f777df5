// Package dislocation implements the Dislocation Tracer: it finds closed
// loops on an interface mesh with non-zero Burgers vector, advances them
// into line segments, joins touching segments into junctions, and produces
// the finished DislocationNetwork (spec.md §4.5).
//
// Layering. interfacemesh.Face and interfacemesh.HalfEdge deliberately carry
// no Burgers-circuit state of their own (see interfacemesh/doc.go) — this
// package would otherwise need to import interfacemesh, which already
// imports tessellation and structure, creating no cycle on its own, but a
// circuit-aware HalfEdge would need to reference *BurgersCircuit, pulling
// dislocation's types back down into interfacemesh and closing a cycle.
// Instead, a tracer keeps its own side tables: edgeCircuit maps a swept
// half-edge to the circuit currently owning it, faceSwept maps a face to
// the circuit that consumed it. This is the same pattern package pathfinder
// uses for its BFS visited set — shared structure stays read-only, mutable
// search state lives with the search.
//
// The ring of half-edges making up a circuit is kept as an ordered slice
// rather than a splice-able circular linked list threaded through
// interfacemesh.HalfEdge (the reference implementation's nextCircuitEdge
// pointer) — for the same layering reason. Shortening a circuit is a slice
// splice instead of a pointer relink; asymptotically equivalent, and the
// idiomatic Go shape given the ring doesn't outlive one tracer run.
package dislocation
