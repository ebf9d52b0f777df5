// Package structure defines the crystal-structure classification vocabulary
// and the per-atom input contract Structure Analysis (SA) hands to the rest
// of the pipeline. SA itself — coordination-structure matching from bond
// topology, i.e. Common Neighbor Analysis — is out of scope (spec.md §1
// treats CNA/SA as a collaborator); this package only owns the shapes that
// cross that boundary plus the constant lattice-geometry tables:
//
//   - Kind: the structure-tag enum (Other/FCC/HCP/BCC/CubicDiamond/HexDiamond).
//   - LatticeConstants: the per-Kind immutable table of ideal nearest-neighbor
//     lattice vectors in the structure's canonical local frame, built once at
//     package init (spec.md Design Notes: "treat [file-scope static tables]
//     as pure constant tables... build them once during library
//     initialization").
//   - NeighborBond: one ordered entry of an atom's neighbor list: which atom,
//     and the ideal lattice vector CNA associates with that bond.
//   - CNAAtom: one atom's CNA classification as consumed by package saglue
//     (Kind, position, ordered neighbor bonds, local orientation matrix).
//
// This package has no dependency on clustergraph: cluster-building (package
// saglue) sits above both structure and clustergraph so that clustergraph
// can depend on structure.Kind without a cycle.
package structure
