package simcell

import (
	"math"

	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/vec3"
)

// SimulationCell describes the periodic simulation box: a 3x3 matrix whose
// columns are the cell's edge vectors, and a per-axis flag saying whether
// that axis wraps.
type SimulationCell struct {
	// CellMatrix's columns are the three cell edge vectors.
	CellMatrix mat3.Matrix3

	// PBCFlags[i] is true iff axis i is periodic.
	PBCFlags [3]bool

	inverse    mat3.Matrix3
	hasInverse bool
}

// New constructs a SimulationCell and eagerly validates that it is
// non-degenerate, returning ErrDegenerateCell if the cell matrix's
// determinant is (numerically) zero.
//
// Complexity: O(1).
func New(cellMatrix mat3.Matrix3, pbcFlags [3]bool) (SimulationCell, error) {
	inv, err := cellMatrix.Inverse()
	if err != nil {
		return SimulationCell{}, ErrDegenerateCell
	}
	return SimulationCell{
		CellMatrix: cellMatrix,
		PBCFlags:   pbcFlags,
		inverse:    inv,
		hasInverse: true,
	}, nil
}

// Volume returns the absolute value of the cell matrix's determinant.
func (c SimulationCell) Volume() float64 {
	return math.Abs(c.CellMatrix.Determinant())
}

// AbsoluteToReduced maps a Cartesian displacement into fractional
// (cell-relative) coordinates.
func (c SimulationCell) AbsoluteToReduced(v vec3.Vector3) vec3.Vector3 {
	return c.inverse.MulVec(v)
}

// ReducedToAbsolute maps a fractional displacement into Cartesian space.
func (c SimulationCell) ReducedToAbsolute(v vec3.Vector3) vec3.Vector3 {
	return c.CellMatrix.MulVec(v)
}

// IsWrappedVector reports whether the Cartesian displacement v has, along
// any periodic axis, a reduced component whose magnitude exceeds 1/2 — the
// "half-image test" spec.md §6 names. A true result on an input tessellation
// edge is the trigger for TooSmallError.
func (c SimulationCell) IsWrappedVector(v vec3.Vector3) (wrapped bool, dim int) {
	r := c.AbsoluteToReduced(v)
	comps := [3]float64{r.X, r.Y, r.Z}
	for i := 0; i < 3; i++ {
		if c.PBCFlags[i] && math.Abs(comps[i]) > 0.5 {
			return true, i
		}
	}
	return false, -1
}

// WrapVector returns v shifted by whole periodic images along every
// periodic axis so that its reduced coordinates lie in [-1/2, 1/2).
func (c SimulationCell) WrapVector(v vec3.Vector3) vec3.Vector3 {
	r := c.AbsoluteToReduced(v)
	comps := [3]float64{r.X, r.Y, r.Z}
	for i := 0; i < 3; i++ {
		if c.PBCFlags[i] {
			comps[i] -= math.Round(comps[i])
		}
	}
	return c.ReducedToAbsolute(vec3.Vector3{X: comps[0], Y: comps[1], Z: comps[2]})
}

// ShiftVector returns the periodic-image shift that must be subtracted from
// point b to bring it close to point a, i.e. the vector such that
// (b - shift) - a is not a wrapped vector. This grounds DislocationTracer's
// calculateShiftVector (spec.md §4.5.6), used when splicing two segment
// lines that meet across a periodic boundary.
func (c SimulationCell) ShiftVector(a, b vec3.Point3) vec3.Vector3 {
	d := c.AbsoluteToReduced(b.Sub(a))
	comps := [3]float64{d.X, d.Y, d.Z}
	for i := 0; i < 3; i++ {
		if c.PBCFlags[i] {
			comps[i] = math.Floor(comps[i] + 0.5)
		} else {
			comps[i] = 0
		}
	}
	return c.ReducedToAbsolute(vec3.Vector3{X: comps[0], Y: comps[1], Z: comps[2]})
}
