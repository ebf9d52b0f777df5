package planardefect

import (
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/tessellation"
)

// localFaceVerts mirrors interfacemesh's facet-numbering convention
// (facet f opposite local vertex f, alternating winding order).
var localFaceVerts = [4][3]int{
	{1, 2, 3},
	{3, 2, 0},
	{0, 1, 3},
	{2, 1, 0},
}

// Face records one detected planar-defect face: the two good cells it
// separates and the lattice-symmetry rotation relating them.
type Face struct {
	CellA, CellB   int
	FacetA, FacetB int
	Rotation       mat3.Matrix3
}

// Detect walks every pair of adjacent good tetrahedra and reports the
// faces whose mutual transition matches one of kind's point-group
// symmetries within tol.
//
// Complexity: O(cells).
func Detect(tess interfacemesh.Tessellation, em *tessellation.ElasticMapping, class *interfacemesh.Classification, kind structure.Kind, tol float64) []Face {
	var faces []Face
	seen := make(map[[2]int]bool)

	for cell := 0; cell < tess.CellCount(); cell++ {
		if tess.IsGhost(cell) || !class.Good[cell] {
			continue
		}
		verts := tess.CellVertices(cell)
		for f := 0; f < 4; f++ {
			mirror, mirrorFacet, ok := tess.MirrorFacet(cell, f)
			if !ok || !class.Good[mirror] {
				continue
			}
			key := canonicalPair(cell, mirror)
			if seen[key] {
				continue
			}
			seen[key] = true

			tri := localFaceVerts[f]
			a, b := verts[tri[0]], verts[tri[1]]
			edge := em.FindEdge(a, b)
			if edge == nil || !edge.Assigned || edge.Transition == nil {
				continue
			}
			if edge.Transition.TM.IsApproxIdentity(tol) {
				continue
			}
			for _, sym := range structure.LatticeConstants[kind].Symmetries {
				if edge.Transition.TM.ApproxEqual(sym, tol) {
					faces = append(faces, Face{
						CellA: cell, CellB: mirror,
						FacetA: f, FacetB: mirrorFacet,
						Rotation: edge.Transition.TM,
					})
					break
				}
			}
		}
	}
	return faces
}

func canonicalPair(a, b int) [2]int {
	if a <= b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
