// Package simcell defines the periodic simulation cell every other DXA stage
// measures distances and wraps vectors against: SimulationCell is one of the
// five public handles spec.md §6 names ("External Interfaces").
//
// The package offers:
//   - SimulationCell: a 3x3 cell matrix plus a per-axis periodic-boundary
//     flag, following the teacher's "small value type + thin method set"
//     shape (core.Vertex/Edge are plain structs with methods on the owning
//     Graph; here the methods live directly on the value since there is no
//     owning arena).
//   - AbsoluteToReduced / ReducedToAbsolute: basis-change utilities used by
//     every wrapping and periodic-image calculation downstream.
//   - WrapVector: wraps a displacement into the cell's minimum image.
//   - IsWrappedVector: spec.md's "half-image test" — true iff a Cartesian
//     displacement, once reduced, has any periodic component whose
//     magnitude exceeds half the cell, which is the trigger for
//     TooSmallError.
//
// Errors: TooSmallError (detected with IsTooSmall) and ErrDegenerateCell are the two
// unrecoverable, whole-pipeline-aborting kinds spec.md §7 assigns to this
// component.
package simcell
