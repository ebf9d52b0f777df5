package structure

import (
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/vec3"
)

// Kind tags an atom (or a Cluster, or a DislocationSegment's home structure)
// with a coordination/lattice structure. The zero value, Other, means "no
// recognized crystal structure" and is what every atom in the null cluster
// carries.
type Kind int

const (
	// Other is the "unidentified structure" tag.
	Other Kind = iota
	// FCC is face-centered cubic.
	FCC
	// HCP is hexagonal close-packed.
	HCP
	// BCC is body-centered cubic.
	BCC
	// CubicDiamond is diamond cubic.
	CubicDiamond
	// HexDiamond is diamond hexagonal (lonsdaleite).
	HexDiamond

	// numKinds counts the defined structure kinds.
	numKinds
)

// String implements fmt.Stringer for readable test output and error messages.
func (k Kind) String() string {
	switch k {
	case Other:
		return "Other"
	case FCC:
		return "FCC"
	case HCP:
		return "HCP"
	case BCC:
		return "BCC"
	case CubicDiamond:
		return "CubicDiamond"
	case HexDiamond:
		return "HexDiamond"
	default:
		return "Unknown"
	}
}

// IsCrystalline reports whether k denotes an actual lattice structure, as
// opposed to Other (the structure tag of the null cluster and of every atom
// CNA could not classify).
func (k Kind) IsCrystalline() bool {
	return k != Other
}

// NeighborBond is one ordered entry in an atom's neighbor list: the index of
// the neighboring atom and the ideal lattice vector CNA/SA associates with
// that bond, expressed in the atom's own local lattice frame.
type NeighborBond struct {
	// Neighbor is the index of the neighboring atom within the same atom
	// array CNAAtom.Neighbors was built from.
	Neighbor int

	// IdealVector is the ideal (defect-free) lattice vector from this atom
	// to Neighbor, in this atom's local frame.
	IdealVector vec3.Vector3
}

// CNAAtom is one atom's classification as handed off by Common Neighbor
// Analysis (out of scope; spec.md §1) to package saglue.
type CNAAtom struct {
	// Structure is this atom's coordination-structure tag.
	Structure Kind

	// Position is the atom's position in simulation coordinates.
	Position vec3.Point3

	// Neighbors is the atom's ordered neighbor list (indices into the same
	// atom slice this CNAAtom came from), each carrying the ideal lattice
	// vector of that bond in LocalOrientation's frame.
	Neighbors []NeighborBond

	// LocalOrientation maps this atom's local lattice frame (the frame its
	// Neighbors' IdealVector values are expressed in) to the simulation
	// frame. Meaningless when Structure == Other.
	LocalOrientation mat3.Matrix3

	// SymmetryPermutation optionally indexes into
	// LatticeConstants[Structure].Symmetries, recording which symmetry
	// operation maps the canonical neighbor ordering onto this atom's
	// observed ordering. -1 if not applicable/unknown.
	SymmetryPermutation int
}
