package tessellation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/simcell"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/tessellation"
	"github.com/dxacore/dxacore/vec3"
)

// singleCell is a fake Tessellation exposing exactly one primary
// tetrahedron over four given vertex indices.
type singleCell struct {
	verts [4]int
}

func (s singleCell) CellCount() int            { return 1 }
func (s singleCell) CellVertices(int) [4]int   { return s.verts }
func (s singleCell) IsGhost(int) bool          { return false }

// fullyConnected builds four atoms at the corners of a unit tetrahedron,
// all in a single crystal cluster, with a direct neighbor bond between
// every pair (so pathfinder never needs more than one hop).
func fullyConnected(t *testing.T) ([]structure.CNAAtom, *clustergraph.Graph, clustergraph.ClusterID) {
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

func TestBuildAndCompatibleTetrahedron(t *testing.T) {
	atoms, g, clusterID := fullyConnected(t)
	clusterOf := []clustergraph.ClusterID{clusterID, clusterID, clusterID, clusterID}

	cell, err := simcell.New(mat3.Identity(), [3]bool{false, false, false})
	require.NoError(t, err)

	tess := singleCell{verts: [4]int{0, 1, 2, 3}}
	em, err := tessellation.Build(tess, atoms, cell, clusterOf, g, 2)
	require.NoError(t, err)

	for _, e := range em.Edges() {
		require.True(t, e.Assigned, "edge %d->%d should be assigned", e.V1, e.V2)
	}

	require.True(t, em.IsCompatible(tess.verts))
}

func TestBuildEdgeDedup(t *testing.T) {
	atoms, g, clusterID := fullyConnected(t)
	clusterOf := []clustergraph.ClusterID{clusterID, clusterID, clusterID, clusterID}
	cell, err := simcell.New(mat3.Identity(), [3]bool{false, false, false})
	require.NoError(t, err)

	tess := singleCell{verts: [4]int{0, 1, 2, 3}}
	em, err := tessellation.Build(tess, atoms, cell, clusterOf, g, 2)
	require.NoError(t, err)

	// Exactly 6 unordered pairs, each creating a forward/reverse pair.
	require.Len(t, em.Edges(), 12)
}
