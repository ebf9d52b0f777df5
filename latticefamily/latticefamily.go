package latticefamily

import (
	"math"

	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/vec3"
)

// IsPerfect reports whether b, expressed in the local lattice frame of a
// cluster of structure kind, is a "perfect" Burgers vector: non-zero, and
// aligned (up to sign, within angleCos of the cosine of the angle) with one
// of that structure's nearest-neighbor lattice vectors.
//
// A angleCos of 1-1e-3 (the default DefaultAlignmentCosine) accepts
// directions within roughly 2.5 degrees of a canonical family direction.
func IsPerfect(kind structure.Kind, b vec3.Vector3, angleCos float64) bool {
	if !kind.IsCrystalline() {
		return false
	}
	length := b.Length()
	if length < 1e-12 {
		return false
	}
	unit := b.Scale(1 / length)

	for _, fam := range structure.LatticeConstants[kind].LatticeVectors {
		famLen := fam.Length()
		if famLen < 1e-12 {
			continue
		}
		famUnit := fam.Scale(1 / famLen)
		cos := unit.Dot(famUnit)
		if math.Abs(cos) >= angleCos {
			return true
		}
	}
	return false
}

// DefaultAlignmentCosine is the default angular tolerance IsPerfect uses
// when the caller has no sharper requirement.
const DefaultAlignmentCosine = 1 - 1e-3
