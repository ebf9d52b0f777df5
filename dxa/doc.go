// Package dxa wires the Structure-Analysis-to-interface-mesh phases
// (saglue, tessellation, interfacemesh), the dislocation tracer, and the
// defect mesh builder into the single entry point: Run.
//
// The core is a library, not a program — Run takes in-memory atom data, a
// simulation cell, and a tessellation, and returns a closed set of typed
// results. No I/O is performed here or by anything it calls.
package dxa
