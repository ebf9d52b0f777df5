package clustergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/structure"
)

func TestNewGraphHasNullCluster(t *testing.T) {
	g := clustergraph.NewGraph()
	null := g.FindCluster(clustergraph.NullClusterID)
	require.NotNil(t, null)
	require.True(t, null.IsNull())
	require.Equal(t, structure.Other, null.Structure)
}

func TestCreateClusterAutoID(t *testing.T) {
	g := clustergraph.NewGraph()
	a := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	b := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	require.Equal(t, clustergraph.ClusterID(1), a.ID)
	require.Equal(t, clustergraph.ClusterID(2), b.ID)
	require.Same(t, a, g.FindCluster(a.ID))
	require.Same(t, b, g.FindCluster(b.ID))
}

func TestSelfTransitionIsIdentity(t *testing.T) {
	g := clustergraph.NewGraph()
	a := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	self := g.CreateSelfTransition(a)
	require.Equal(t, 0, self.Distance)
	require.True(t, self.TM.IsApproxIdentity(params.TransitionMatrixEpsilon))
	require.Same(t, self, self.Reverse)
	// Calling it again returns the same transition, not a duplicate.
	require.Same(t, self, g.CreateSelfTransition(a))
}

func TestCreateClusterTransitionBuildsReverse(t *testing.T) {
	g := clustergraph.NewGraph()
	a := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	b := g.CreateCluster(structure.FCC, clustergraph.AutoID)

	tm := mat3.Matrix3{M: [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}} // 90deg about z
	tAB := g.CreateClusterTransition(a, b, tm, 1)
	require.Equal(t, a, tAB.Source)
	require.Equal(t, b, tAB.Dest)
	require.Equal(t, 1, tAB.Distance)

	tBA := tAB.Reverse
	require.Equal(t, b, tBA.Source)
	require.Equal(t, a, tBA.Dest)
	inv, err := tm.Inverse()
	require.NoError(t, err)
	require.True(t, tBA.TM.ApproxEqual(inv, 1e-9))
}

// TestConcatenateSelfTransitionProperty1 checks spec.md Property 1:
// concatenating a transition with its reverse yields the source's
// self-transition, with an identity matrix.
func TestConcatenateSelfTransitionProperty1(t *testing.T) {
	g := clustergraph.NewGraph()
	a := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	b := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	tm := mat3.Matrix3{M: [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}}
	tAB := g.CreateClusterTransition(a, b, tm, 1)

	self := g.ConcatenateTransitions(tAB, tAB.Reverse)
	require.Same(t, a, self.Source)
	require.True(t, self.IsSelfTransition())
	require.True(t, self.TM.IsApproxIdentity(params.TransitionMatrixEpsilon))
}

// TestDetermineTransitionTwoHop builds A-B-C and checks that
// DetermineTransition(A,C) finds the concatenated path and caches it.
func TestDetermineTransitionTwoHop(t *testing.T) {
	g := clustergraph.NewGraph()
	a := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	b := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	c := g.CreateCluster(structure.FCC, clustergraph.AutoID)

	rotAB := mat3.Matrix3{M: [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}}
	rotBC := mat3.Matrix3{M: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}}
	tAB := g.CreateClusterTransition(a, b, rotAB, 1)
	tBC := g.CreateClusterTransition(b, c, rotBC, 1)

	want := tBC.TM.Mul(tAB.TM)

	got := g.DetermineTransition(a, c)
	require.NotNil(t, got)
	require.True(t, got.TM.ApproxEqual(want, 1e-9))
	require.Equal(t, 2, got.Distance)

	// Property 2: second query is a direct hit with no further graph work
	// (answered straight from a's outgoing list) and returns the identical
	// transition object.
	again := g.DetermineTransition(a, c)
	require.Same(t, got, again)
}

// TestDetermineTransitionDisconnected checks that two clusters with no
// transitions between them yield no transition, on repeated queries too.
func TestDetermineTransitionDisconnected(t *testing.T) {
	g := clustergraph.NewGraph()
	a := g.CreateCluster(structure.FCC, clustergraph.AutoID)
	b := g.CreateCluster(structure.BCC, clustergraph.AutoID)

	require.Nil(t, g.DetermineTransition(a, b))
	// Second call must also be nil; both clusters have no transitions, so
	// DetermineTransition returns before consulting the disconnected cache.
	require.Nil(t, g.DetermineTransition(a, b))
}
