package mat3

import (
	"errors"
	"math"

	"github.com/dxacore/dxacore/vec3"
)

// ErrSingular is returned by Inverse when the matrix's determinant is
// (numerically) zero.
var ErrSingular = errors.New("mat3: matrix is singular")

// Matrix3 is a row-major 3x3 matrix: M[row][col].
type Matrix3 struct {
	M [3][3]float64
}

// Identity returns the 3x3 identity matrix.
func Identity() Matrix3 {
	return Matrix3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// FromRows builds a Matrix3 from three row vectors.
func FromRows(r0, r1, r2 vec3.Vector3) Matrix3 {
	return Matrix3{M: [3][3]float64{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}}
}

// FromCols builds a Matrix3 from three column vectors.
func FromCols(c0, c1, c2 vec3.Vector3) Matrix3 {
	return Matrix3{M: [3][3]float64{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}}
}

// Col returns column j (0,1,2) as a Vector3.
func (a Matrix3) Col(j int) vec3.Vector3 {
	return vec3.Vector3{X: a.M[0][j], Y: a.M[1][j], Z: a.M[2][j]}
}

// Row returns row i (0,1,2) as a Vector3.
func (a Matrix3) Row(i int) vec3.Vector3 {
	return vec3.Vector3{X: a.M[i][0], Y: a.M[i][1], Z: a.M[i][2]}
}

// MulVec applies a to v: returns a*v.
//
// Complexity: O(1), 9 multiply-adds.
func (a Matrix3) MulVec(v vec3.Vector3) vec3.Vector3 {
	return vec3.Vector3{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z,
	}
}

// Mul returns the matrix product a*b (apply b first, then a — matches the
// cluster-graph convention tAC.tm = tBC.tm * tAB.tm).
//
// Complexity: O(1), 27 multiply-adds.
func (a Matrix3) Mul(b Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a.M[i][k] * b.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	return out
}

// Transpose returns the transpose of a.
func (a Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[j][i] = a.M[i][j]
		}
	}
	return out
}

// Determinant returns det(a) via the standard 3x3 cofactor expansion.
func (a Matrix3) Determinant() float64 {
	return a.M[0][0]*(a.M[1][1]*a.M[2][2]-a.M[1][2]*a.M[2][1]) -
		a.M[0][1]*(a.M[1][0]*a.M[2][2]-a.M[1][2]*a.M[2][0]) +
		a.M[0][2]*(a.M[1][0]*a.M[2][1]-a.M[1][1]*a.M[2][0])
}

// Inverse returns a^-1 computed via the closed-form cofactor/adjugate
// formula, specialized to 3x3 so no general LU decomposition workspace is
// needed.
//
// Complexity: O(1).
func (a Matrix3) Inverse() (Matrix3, error) {
	det := a.Determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix3{}, ErrSingular
	}
	invDet := 1.0 / det

	var c Matrix3 // cofactor matrix
	c.M[0][0] = a.M[1][1]*a.M[2][2] - a.M[1][2]*a.M[2][1]
	c.M[0][1] = -(a.M[1][0]*a.M[2][2] - a.M[1][2]*a.M[2][0])
	c.M[0][2] = a.M[1][0]*a.M[2][1] - a.M[1][1]*a.M[2][0]
	c.M[1][0] = -(a.M[0][1]*a.M[2][2] - a.M[0][2]*a.M[2][1])
	c.M[1][1] = a.M[0][0]*a.M[2][2] - a.M[0][2]*a.M[2][0]
	c.M[1][2] = -(a.M[0][0]*a.M[2][1] - a.M[0][1]*a.M[2][0])
	c.M[2][0] = a.M[0][1]*a.M[1][2] - a.M[0][2]*a.M[1][1]
	c.M[2][1] = -(a.M[0][0]*a.M[1][2] - a.M[0][2]*a.M[1][0])
	c.M[2][2] = a.M[0][0]*a.M[1][1] - a.M[0][1]*a.M[1][0]

	// adjugate = transpose(cofactor); inverse = adjugate / det
	adj := c.Transpose()
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = adj.M[i][j] * invDet
		}
	}
	return out, nil
}

// ApproxEqual reports whether a and b agree within eps on every element.
func (a Matrix3) ApproxEqual(b Matrix3, eps float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a.M[i][j]-b.M[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsApproxIdentity reports whether a is within eps of the identity matrix.
func (a Matrix3) IsApproxIdentity(eps float64) bool {
	return a.ApproxEqual(Identity(), eps)
}
