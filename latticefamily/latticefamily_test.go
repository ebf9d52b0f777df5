package latticefamily_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/latticefamily"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/vec3"
)

func TestIsPerfectMatchesKnownFamily(t *testing.T) {
	fam := structure.LatticeConstants[structure.FCC].LatticeVectors[0]
	require.True(t, latticefamily.IsPerfect(structure.FCC, fam, latticefamily.DefaultAlignmentCosine))
	require.True(t, latticefamily.IsPerfect(structure.FCC, fam.Negate(), latticefamily.DefaultAlignmentCosine))
	require.True(t, latticefamily.IsPerfect(structure.FCC, fam.Scale(3.7), latticefamily.DefaultAlignmentCosine))
}

func TestIsPerfectRejectsOffAxis(t *testing.T) {
	off := vec3.Vector3{X: 1, Y: 0.37, Z: 0.91}
	require.False(t, latticefamily.IsPerfect(structure.FCC, off, latticefamily.DefaultAlignmentCosine))
}

func TestIsPerfectRejectsNonCrystalline(t *testing.T) {
	require.False(t, latticefamily.IsPerfect(structure.Other, vec3.Vector3{X: 1}, latticefamily.DefaultAlignmentCosine))
}

func TestIsPerfectRejectsZeroVector(t *testing.T) {
	require.False(t, latticefamily.IsPerfect(structure.FCC, vec3.Vector3{}, latticefamily.DefaultAlignmentCosine))
}
