package dislocation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/simcell"
	"github.com/dxacore/dxacore/vec3"
)

// ringOf builds a circuit whose Edges each have a distinct origin position,
// so meshCentroid moves every time the ring grows or shrinks.
func ringOf(t *testing.T, positions ...vec3.Point3) *BurgersCircuit {
	t.Helper()
	edges := make([]*interfacemesh.HalfEdge, len(positions))
	for i, p := range positions {
		edges[i] = &interfacemesh.HalfEdge{Origin: &interfacemesh.Vertex{Position: p}}
	}
	return &BurgersCircuit{Edges: edges}
}

func newTestTracer(t *testing.T) *Tracer {
	t.Helper()
	cell, err := simcell.New(mat3.Identity(), [3]bool{false, false, false})
	require.NoError(t, err)
	return NewTracer(&interfacemesh.Mesh{}, nil, nil, cell, params.New())
}

// Every code path that changes a segment's Line must change CoreSize in
// lockstep: appendLinePoint, closeLoop, mergeSegments, materializeJunction,
// and flipOrientation.
func TestCoreSizeStaysInLockstepWithLine(t *testing.T) {
	tr := newTestTracer(t)

	backward := ringOf(t, vec3.Point3{X: 0, Y: 0, Z: 0}, vec3.Point3{X: 1, Y: 0, Z: 0}, vec3.Point3{X: 0, Y: 1, Z: 0})
	forward := ringOf(t, vec3.Point3{X: 2, Y: 0, Z: 0}, vec3.Point3{X: 3, Y: 0, Z: 0}, vec3.Point3{X: 2, Y: 1, Z: 0}, vec3.Point3{X: 2, Y: 0, Z: 1})

	seg := &DislocationSegment{ID: 0}
	backwardNode := &DislocationNode{Segment: seg, AtTail: true, Circuit: backward}
	forwardNode := &DislocationNode{Segment: seg, AtTail: false, Circuit: forward}
	backward.Node = backwardNode
	forward.Node = forwardNode
	seg.Backward = backwardNode
	seg.Forward = forwardNode

	seg.Line = append(seg.Line, meshCentroid(backward.Edges))
	seg.CoreSize = append(seg.CoreSize, backward.EdgeCount())
	tr.appendLinePoint(seg, forwardNode)

	require.Equal(t, len(seg.Line), len(seg.CoreSize))
	require.Equal(t, []int{3, 4}, seg.CoreSize)

	// Grow the backward circuit by two edges and record another point at
	// its end, so the three CoreSize entries are all distinct.
	backward.Edges = append(backward.Edges,
		&interfacemesh.HalfEdge{Origin: &interfacemesh.Vertex{Position: vec3.Point3{X: -1, Y: 0, Z: 0}}},
		&interfacemesh.HalfEdge{Origin: &interfacemesh.Vertex{Position: vec3.Point3{X: -1, Y: 1, Z: 0}}},
	)
	tr.appendLinePoint(seg, backwardNode)
	require.Equal(t, len(seg.Line), len(seg.CoreSize))
	require.Equal(t, []int{5, 3, 4}, seg.CoreSize)
	require.Equal(t, 1, backward.Preliminary)

	flipOrientation(seg)
	require.Equal(t, len(seg.Line), len(seg.CoreSize))
	require.Equal(t, []int{4, 3, 5}, seg.CoreSize)
}

func TestCloseLoopDuplicatesCoreSizeOfClosingPoint(t *testing.T) {
	tr := newTestTracer(t)

	circuit := ringOf(t, vec3.Point3{X: 0, Y: 0, Z: 0}, vec3.Point3{X: 1, Y: 0, Z: 0}, vec3.Point3{X: 0, Y: 1, Z: 0})
	seg := &DislocationSegment{
		ID:       0,
		Line:     []vec3.Point3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1e-6}},
		CoreSize: []int{3, 4, 3},
	}
	a := &DislocationNode{Segment: seg, AtTail: true, Circuit: circuit}
	b := &DislocationNode{Segment: seg, AtTail: false, Circuit: circuit}
	seg.Backward, seg.Forward = a, b
	circuit.Preliminary = 2

	tr.closeLoop(a, b)

	require.Equal(t, len(seg.Line), len(seg.CoreSize))
	require.Equal(t, seg.CoreSize[0], seg.CoreSize[len(seg.CoreSize)-1])
	require.Zero(t, circuit.Preliminary)
	require.True(t, a.Resolved)
	require.True(t, b.Resolved)
}

func TestTrimPreliminaryPointsKeepsLineAndCoreSizeAligned(t *testing.T) {
	circuitA := &BurgersCircuit{Preliminary: 1}
	circuitB := &BurgersCircuit{Preliminary: 2}
	seg := &DislocationSegment{
		Line:     make([]vec3.Point3, 6),
		CoreSize: []int{1, 2, 3, 4, 5, 6},
		Backward: &DislocationNode{Circuit: circuitA},
		Forward:  &DislocationNode{Circuit: circuitB},
	}

	trimPreliminaryPoints(seg)

	require.Equal(t, []int{2, 3, 4}, seg.CoreSize)
	require.Equal(t, len(seg.Line), len(seg.CoreSize))
}
