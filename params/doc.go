// Package params centralizes the tunable knobs and numeric tolerances shared
// by every DXA stage, using the functional-options idiom: a Parameters value
// is never mutated directly by callers; it is assembled once via New(opts...)
// and passed down by value through the pipeline.
//
// The package offers:
//   - Parameters: resolved configuration (MaxTrialCircuitSize,
//     CircuitStretchability, OnlyPerfectDislocations, DetectPlanarDefects,
//     PreferredCrystalOrientations, RandomSeed, MaxClusterDistance).
//   - Option: a function that mutates Parameters before use.
//   - WithMaxTrialCircuitSize, WithCircuitStretchability,
//     WithOnlyPerfectDislocations, WithDetectPlanarDefects,
//     WithPreferredCrystalOrientations, WithRandomSeed,
//     WithMaxClusterDistance: Option constructors.
//   - Numeric tolerances: LatticeVectorEpsilon, AtomVectorEpsilon,
//     TransitionMatrixEpsilon (all 1e-4 per spec), and
//     DefaultMaxClusterDistance (the cluster-graph bounded search depth
//     New starts from, 2).
//
// Complexity: New applies N options in O(N) time, O(1) extra space.
package params
