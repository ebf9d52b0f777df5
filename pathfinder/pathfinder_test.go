package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/pathfinder"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/vec3"
)

// buildChain creates three atoms 0-1-2, all assigned to the same FCC
// cluster, with reciprocal neighbor bonds along +X between consecutive
// atoms.
func buildChain(g *clustergraph.Graph, cluster *clustergraph.Cluster) ([]structure.CNAAtom, []clustergraph.ClusterID) {
	bondFwd := vec3.Vector3{X: 1, Y: 0, Z: 0}
	bondBack := bondFwd.Negate()

	atoms := []structure.CNAAtom{
		{Structure: structure.FCC, Neighbors: []structure.NeighborBond{{Neighbor: 1, IdealVector: bondFwd}}},
		{Structure: structure.FCC, Neighbors: []structure.NeighborBond{
			{Neighbor: 0, IdealVector: bondBack},
			{Neighbor: 2, IdealVector: bondFwd},
		}},
		{Structure: structure.FCC, Neighbors: []structure.NeighborBond{{Neighbor: 1, IdealVector: bondBack}}},
	}
	clusterOf := []clustergraph.ClusterID{cluster.ID, cluster.ID, cluster.ID}
	return atoms, clusterOf
}

func TestFindSameAtomReturnsZero(t *testing.T) {
	g := clustergraph.NewGraph()
	c := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	atoms, clusterOf := buildChain(g, c)

	got, ok := pathfinder.Find(atoms, clusterOf, g, 0, 0, 2)
	require.True(t, ok)
	require.True(t, got.IsZero(1e-12))
}

func TestFindOneHop(t *testing.T) {
	g := clustergraph.NewGraph()
	c := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	atoms, clusterOf := buildChain(g, c)

	got, ok := pathfinder.Find(atoms, clusterOf, g, 0, 1, 2)
	require.True(t, ok)
	require.True(t, got.Vec.ApproxEqual(vec3.Vector3{X: 1}, 1e-9))
	require.Same(t, c, got.Cluster)
}

func TestFindTwoHopAccumulates(t *testing.T) {
	g := clustergraph.NewGraph()
	c := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	atoms, clusterOf := buildChain(g, c)

	got, ok := pathfinder.Find(atoms, clusterOf, g, 0, 2, 2)
	require.True(t, ok)
	require.True(t, got.Vec.ApproxEqual(vec3.Vector3{X: 2}, 1e-9))
}

func TestFindBeyondBoundFails(t *testing.T) {
	g := clustergraph.NewGraph()
	c := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	atoms, clusterOf := buildChain(g, c)

	_, ok := pathfinder.Find(atoms, clusterOf, g, 0, 2, 1)
	require.False(t, ok)
}

func TestFindNoPath(t *testing.T) {
	g := clustergraph.NewGraph()
	c := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	atoms := []structure.CNAAtom{
		{Structure: structure.FCC},
		{Structure: structure.FCC},
	}
	clusterOf := []clustergraph.ClusterID{c.ID, c.ID}

	_, ok := pathfinder.Find(atoms, clusterOf, g, 0, 1, 2)
	require.False(t, ok)
}

// TestFindReverseLookupThroughNullCenter checks that when the center atom
// carries no cluster classification, the step vector is recovered via a
// reverse lookup through the neighbor's own neighbor list.
func TestFindReverseLookupThroughNullCenter(t *testing.T) {
	g := clustergraph.NewGraph()
	c := g.CreateCluster(structure.FCC, clustergraph.AutoID)

	bondFwd := vec3.Vector3{X: 1, Y: 0, Z: 0}
	atoms := []structure.CNAAtom{
		// atom 0 has no crystalline classification, so its own neighbor
		// vector (left zero here) is ignored; the adjacency entry is still
		// required to discover the hop.
		{Structure: structure.Other, Neighbors: []structure.NeighborBond{{Neighbor: 1}}},
		{Structure: structure.FCC, Neighbors: []structure.NeighborBond{{Neighbor: 0, IdealVector: bondFwd}}},
	}
	clusterOf := []clustergraph.ClusterID{clustergraph.NullClusterID, c.ID}

	got, ok := pathfinder.Find(atoms, clusterOf, g, 0, 1, 2)
	require.True(t, ok)
	require.True(t, got.Vec.ApproxEqual(bondFwd.Negate(), 1e-9))
}
