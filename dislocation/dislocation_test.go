package dislocation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/dislocation"
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/simcell"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/tessellation"
	"github.com/dxacore/dxacore/vec3"
)

type isolatedTetra struct {
	verts [4]int
}

func (c isolatedTetra) CellCount() int          { return 1 }
func (c isolatedTetra) CellVertices(int) [4]int { return c.verts }
func (c isolatedTetra) IsGhost(int) bool        { return false }
func (c isolatedTetra) MirrorFacet(cell, f int) (int, int, bool) {
	return 0, 0, false
}

func buildPerfectTetraMesh(t *testing.T) (*interfacemesh.Mesh, *clustergraph.Graph, []clustergraph.ClusterID, simcell.SimulationCell) {
	t.Helper()
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
	clusterOf := []clustergraph.ClusterID{cluster.ID, cluster.ID, cluster.ID, cluster.ID}

	cell, err := simcell.New(mat3.Identity(), [3]bool{false, false, false})
	require.NoError(t, err)

	tess := isolatedTetra{verts: [4]int{0, 1, 2, 3}}
	em, err := tessellation.Build(tess, atoms, cell, clusterOf, g, 2)
	require.NoError(t, err)

	class := interfacemesh.ClassifyTetrahedra(tess, em)
	mesh := interfacemesh.CreateMesh(tess, em, atoms, cell, class)
	return mesh, g, clusterOf, cell
}

// A single isolated tetrahedron with an identity orientation everywhere has
// no dislocation content: every closed loop on its surface has a zero net
// lattice vector, so the tracer should find nothing.
func TestRunFindsNothingInPerfectLattice(t *testing.T) {
	mesh, g, clusterOf, cell := buildPerfectTetraMesh(t)

	p := params.New(params.WithMaxTrialCircuitSize(5), params.WithCircuitStretchability(2))
	tr := dislocation.NewTracer(mesh, g, clusterOf, cell, p)
	net := tr.Run()

	require.Empty(t, net.Segments)
}

func TestNewTracerDoesNotPanicOnEmptyMesh(t *testing.T) {
	mesh, g, clusterOf, cell := buildPerfectTetraMesh(t)
	_ = mesh

	empty := &interfacemesh.Mesh{}
	p := params.New()
	tr := dislocation.NewTracer(empty, g, clusterOf, cell, p)
	net := tr.Run()
	require.Empty(t, net.Segments)
}
