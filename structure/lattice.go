package structure

import (
	"math"

	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/vec3"
)

// LatticeGeometry is the immutable per-structure description of ideal
// nearest-neighbor bond vectors and the point-group symmetries that leave
// the lattice invariant. Built once at package init time and never mutated
// afterward (spec.md Design Notes: "build them once during library
// initialization, store them by value in an immutable process-wide datum").
type LatticeGeometry struct {
	// Structure is the Kind this geometry describes.
	Structure Kind

	// LatticeVectors are the canonical nearest-neighbor bond vectors in the
	// structure's local frame, in a fixed canonical order.
	LatticeVectors []vec3.Vector3

	// Symmetries are the rotation matrices of the structure's point group
	// (cubic Oh for FCC/BCC/CubicDiamond, hexagonal D6h approximated for
	// HCP/HexDiamond), used by saglue's same-grain test and by
	// planardefect's "matrix is a symmetry-related rotation" check.
	Symmetries []mat3.Matrix3
}

// LatticeConstants is the process-wide table of LatticeGeometry, indexed by
// Kind. LatticeConstants[Other] has no lattice vectors or symmetries.
var LatticeConstants [numKinds]LatticeGeometry

func init() {
	LatticeConstants[Other] = LatticeGeometry{Structure: Other}
	LatticeConstants[FCC] = LatticeGeometry{
		Structure:      FCC,
		LatticeVectors: fccNeighborVectors(1.0),
		Symmetries:     cubicPointGroup(),
	}
	LatticeConstants[BCC] = LatticeGeometry{
		Structure:      BCC,
		LatticeVectors: bccNeighborVectors(1.0),
		Symmetries:     cubicPointGroup(),
	}
	LatticeConstants[CubicDiamond] = LatticeGeometry{
		Structure:      CubicDiamond,
		LatticeVectors: diamondNeighborVectors(1.0),
		Symmetries:     cubicPointGroup(),
	}
	LatticeConstants[HCP] = LatticeGeometry{
		Structure:      HCP,
		LatticeVectors: hcpNeighborVectors(1.0, 1.633),
		Symmetries:     hexagonalPointGroup(),
	}
	LatticeConstants[HexDiamond] = LatticeGeometry{
		Structure:      HexDiamond,
		LatticeVectors: hcpNeighborVectors(1.0, 1.633)[:4],
		Symmetries:     hexagonalPointGroup(),
	}
}

// fccNeighborVectors returns the 12 <110>/2 nearest neighbors of an FCC
// lattice with conventional cell parameter a.
func fccNeighborVectors(a float64) []vec3.Vector3 {
	h := a / 2
	signs := []float64{1, -1}
	var out []vec3.Vector3
	axes := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, ax := range axes {
		for _, s1 := range signs {
			for _, s2 := range signs {
				v := vec3.Vector3{}
				comp := [3]float64{}
				comp[ax[0]] = s1 * h
				comp[ax[1]] = s2 * h
				v.X, v.Y, v.Z = comp[0], comp[1], comp[2]
				out = append(out, v)
			}
		}
	}
	return out
}

// bccNeighborVectors returns the 8 <111>/2 nearest neighbors of a BCC
// lattice with conventional cell parameter a.
func bccNeighborVectors(a float64) []vec3.Vector3 {
	h := a / 2
	signs := []float64{1, -1}
	var out []vec3.Vector3
	for _, sx := range signs {
		for _, sy := range signs {
			for _, sz := range signs {
				out = append(out, vec3.Vector3{X: sx * h, Y: sy * h, Z: sz * h})
			}
		}
	}
	return out
}

// diamondNeighborVectors returns the 4 tetrahedral nearest neighbors of a
// diamond-cubic lattice with conventional cell parameter a.
func diamondNeighborVectors(a float64) []vec3.Vector3 {
	q := a / 4
	return []vec3.Vector3{
		{X: q, Y: q, Z: q},
		{X: q, Y: -q, Z: -q},
		{X: -q, Y: q, Z: -q},
		{X: -q, Y: -q, Z: q},
	}
}

// hcpNeighborVectors returns the 12 nearest neighbors of an ideal
// hexagonal-close-packed lattice with basal parameter a and c/a ratio
// covering; 6 in-plane, 3 above and 3 below.
func hcpNeighborVectors(a, covera float64) []vec3.Vector3 {
	c := a * covera
	var out []vec3.Vector3
	for k := 0; k < 6; k++ {
		theta := float64(k) * math.Pi / 3
		out = append(out, vec3.Vector3{X: a * math.Cos(theta), Y: a * math.Sin(theta), Z: 0})
	}
	// Three neighbors above, three below, at the tetrahedral-like offset
	// characteristic of the ideal hcp stacking.
	upDown := []float64{c / 2, -c / 2}
	for _, dz := range upDown {
		for k := 0; k < 3; k++ {
			theta := float64(k)*2*math.Pi/3 + math.Pi/6
			out = append(out, vec3.Vector3{
				X: (a / math.Sqrt(3)) * math.Cos(theta),
				Y: (a / math.Sqrt(3)) * math.Sin(theta),
				Z: dz,
			})
		}
	}
	return out
}

// cubicPointGroup returns the 24 proper rotations of the cubic point group
// Oh (orientation-preserving symmetries of a cube): every matrix with
// exactly one +/-1 per row and column and determinant +1.
func cubicPointGroup() []mat3.Matrix3 {
	var out []mat3.Matrix3
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	signs := []float64{1, -1}
	for _, p := range perms {
		for _, sx := range signs {
			for _, sy := range signs {
				for _, sz := range signs {
					var m mat3.Matrix3
					s := [3]float64{sx, sy, sz}
					m.M[0][p[0]] = s[0]
					m.M[1][p[1]] = s[1]
					m.M[2][p[2]] = s[2]
					if m.Determinant() > 0 {
						out = append(out, m)
					}
				}
			}
		}
	}
	return out
}

// hexagonalPointGroup returns the 12 proper rotations of the hexagonal
// point group D6 about the c (z) axis: six in-plane rotations by multiples
// of 60 degrees, each either preserving z or flipping it (C2 axes normal to
// c).
func hexagonalPointGroup() []mat3.Matrix3 {
	var out []mat3.Matrix3
	for k := 0; k < 6; k++ {
		theta := float64(k) * math.Pi / 3
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		rot := mat3.Matrix3{M: [3][3]float64{
			{cosT, -sinT, 0},
			{sinT, cosT, 0},
			{0, 0, 1},
		}}
		out = append(out, rot)
		flip := mat3.Matrix3{M: [3][3]float64{
			{cosT, sinT, 0},
			{sinT, -cosT, 0},
			{0, 0, -1},
		}}
		out = append(out, flip)
	}
	return out
}
