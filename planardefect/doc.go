// Package planardefect implements the disabled grain-boundary / stacking
// fault detector spec.md §9 documents as an open question ("the source
// contains a working but currently-disabled grain-boundary/stacking-fault
// detector... if the new implementation chooses to include it, the
// interface is: walk pairs of adjacent good tetrahedra, compute their
// mutual Frank rotation; if it equals a known lattice symmetry the face is
// planar-defect material; emit it on a separate mesh").
//
// Two good (elastically compatible) tetrahedra sharing a face already
// carry a consistent cluster transition across that face — that is what
// "good" means. Detect reuses it directly: the transition associated with
// one of the shared face's edges is the "mutual Frank rotation" the spec
// describes. An identity transition means the two cells are in the same
// grain (nothing to report); a transition matching one of the target
// structure's point-group symmetries (structure.LatticeConstants, built in
// package structure) means the shared face is coherent planar-defect
// material (a twin boundary or stacking fault) rather than a disordered
// grain boundary.
//
// Enabled via params.Parameters.DetectPlanarDefects; off by default,
// mirroring the source's own disabled state.
package planardefect
