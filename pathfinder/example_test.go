package pathfinder_test

import (
	"fmt"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/pathfinder"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/vec3"
)

// ExampleFind walks a three-atom chain along +X and recovers the ideal
// separation between the first and last atom as a single accumulated
// lattice vector, expressed in their shared cluster's frame.
func ExampleFind() {
	g := clustergraph.NewGraph()
	grain := g.CreateCluster(structure.FCC, clustergraph.AutoID)

	bond := vec3.Vector3{X: 1, Y: 0, Z: 0}
	atoms := []structure.CNAAtom{
		{Structure: structure.FCC, Neighbors: []structure.NeighborBond{{Neighbor: 1, IdealVector: bond}}},
		{Structure: structure.FCC, Neighbors: []structure.NeighborBond{
			{Neighbor: 0, IdealVector: bond.Negate()},
			{Neighbor: 2, IdealVector: bond},
		}},
		{Structure: structure.FCC, Neighbors: []structure.NeighborBond{{Neighbor: 1, IdealVector: bond.Negate()}}},
	}
	clusterOf := []clustergraph.ClusterID{grain.ID, grain.ID, grain.ID}

	v, ok := pathfinder.Find(atoms, clusterOf, g, 0, 2, 2)
	fmt.Println(ok, v.Vec.X, v.Vec.Y, v.Vec.Z)
	// Output:
	// true 2 0 0
}
