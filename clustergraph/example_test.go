package clustergraph_test

import (
	"fmt"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/structure"
)

// ExampleGraph demonstrates registering two clusters and the 90-degree
// rotation that transforms one cluster's frame into the other's, then
// querying the inverse transition.
func ExampleGraph() {
	g := clustergraph.NewGraph()
	grainA := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	grainB := g.CreateCluster(structure.FCC, clustergraph.AutoID)

	rot90Z := mat3.Matrix3{M: [3][3]float64{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}}
	g.CreateClusterTransition(grainA, grainB, rot90Z, 1)

	back := g.DetermineTransition(grainB, grainA)
	fmt.Printf("%.0f %.0f %.0f\n", back.TM.M[0][0], back.TM.M[0][1], back.TM.M[0][2])
	fmt.Printf("%.0f %.0f %.0f\n", back.TM.M[1][0], back.TM.M[1][1], back.TM.M[1][2])
	// Output:
	// 0 1 -0
	// -1 0 -0
}
