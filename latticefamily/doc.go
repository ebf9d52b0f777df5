// Package latticefamily implements the "only perfect dislocations" post
// filter (spec.md §9's open question: "a post-filter that drops segments
// whose Burgers vector matches no 'perfect' family in the chosen lattice").
//
// The spec leaves the exact family definition unresolved ("An implementer
// should verify against test outputs rather than guess" — no such outputs
// were supplied with this pack). Rather than invent a new table, this
// package reuses structure.LatticeConstants' per-structure lattice-vector
// directions (already the canonical nearest-neighbor translations of each
// crystal structure, built in package structure and exercised by its
// lattice generators) as the definition of "perfect": a Burgers vector is
// perfect for a structure iff its direction matches (up to sign, within an
// angular tolerance) one of that structure's lattice vectors. This is a
// documented simplification (DESIGN.md) that avoids guessing undocumented
// magnitudes while still giving the filter real discriminating power.
package latticefamily
