package interfacemesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/simcell"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/tessellation"
	"github.com/dxacore/dxacore/vec3"
)

// isolatedTetra is a fake Tessellation with a single primary cell and no
// neighbors across any of its four facets (an isolated tetrahedron, which
// by itself is already a closed 2-manifold surface).
type isolatedTetra struct {
	verts [4]int
}

func (c isolatedTetra) CellCount() int          { return 1 }
func (c isolatedTetra) CellVertices(int) [4]int { return c.verts }
func (c isolatedTetra) IsGhost(int) bool        { return false }
func (c isolatedTetra) MirrorFacet(cell, f int) (int, int, bool) {
	return 0, 0, false
}

func buildFullyConnectedAtoms() ([]structure.CNAAtom, *clustergraph.Graph, clustergraph.ClusterID) {
	positions := []vec3.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	atoms := make([]structure.CNAAtom, len(positions))
	for i := range atoms {
		var neighbors []structure.NeighborBond
		for j := range positions {
			if i == j {
				continue
			}
			neighbors = append(neighbors, structure.NeighborBond{
				Neighbor:    j,
				IdealVector: positions[j].Sub(positions[i]),
			})
		}
		atoms[i] = structure.CNAAtom{
			Structure:           structure.FCC,
			Position:            positions[i],
			Neighbors:           neighbors,
			LocalOrientation:    mat3.Identity(),
			SymmetryPermutation: -1,
		}
	}
	g := clustergraph.NewGraph()
	cluster := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	return atoms, g, cluster.ID
}

func TestCreateMeshIsolatedTetrahedronIsClosedManifold(t *testing.T) {
	atoms, g, clusterID := buildFullyConnectedAtoms()
	clusterOf := []clustergraph.ClusterID{clusterID, clusterID, clusterID, clusterID}

	cell, err := simcell.New(mat3.Identity(), [3]bool{false, false, false})
	require.NoError(t, err)

	tess := isolatedTetra{verts: [4]int{0, 1, 2, 3}}
	em, err := tessellation.Build(tess, atoms, cell, clusterOf, g, 2)
	require.NoError(t, err)
	require.True(t, em.IsCompatible(tess.verts))

	class := interfacemesh.ClassifyTetrahedra(tess, em)
	require.True(t, class.Good[0])
	require.False(t, class.CompletelyBad[0])

	mesh := interfacemesh.CreateMesh(tess, em, atoms, cell, class)
	require.Len(t, mesh.Faces(), 4)
	require.Len(t, mesh.HalfEdges(), 12)

	require.NoError(t, interfacemesh.Validate(mesh))
}
