package interfacemesh_test

import (
	"fmt"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/simcell"
	"github.com/dxacore/dxacore/tessellation"
)

// ExampleCreateMesh builds the closed surface of a single isolated
// tetrahedron, which has no bad neighbor to separate from and so emits all
// four of its faces.
func ExampleCreateMesh() {
	atoms, g, clusterID := buildFullyConnectedAtoms()
	clusterOf := []clustergraph.ClusterID{clusterID, clusterID, clusterID, clusterID}
	cell, _ := simcell.New(mat3.Identity(), [3]bool{false, false, false})

	tess := isolatedTetra{verts: [4]int{0, 1, 2, 3}}
	em, _ := tessellation.Build(tess, atoms, cell, clusterOf, g, 2)
	class := interfacemesh.ClassifyTetrahedra(tess, em)
	mesh := interfacemesh.CreateMesh(tess, em, atoms, cell, class)

	fmt.Println(len(mesh.Faces()), len(mesh.Vertices()))
	// Output:
	// 4 4
}
