package dislocation

import (
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/vec3"
)

// createAndTraceSegment allocates a new segment anchored by forward and
// backward, placing both nodes on the dangling list and extending each
// with traceSegment (spec.md §4.5.4).
func (tr *Tracer) createAndTraceSegment(forward, backward *BurgersCircuit, circuitLength int) {
	seed := forward.Edges[0].Origin
	home := tr.homeCluster(seed)

	seg := &DislocationSegment{
		ID:          tr.newSegmentID(),
		Burgers:     forward.Burgers,
		HomeCluster: home,
	}

	backwardNode := &DislocationNode{Segment: seg, AtTail: true, Circuit: backward}
	forwardNode := &DislocationNode{Segment: seg, AtTail: false, Circuit: forward}
	backward.Node = backwardNode
	forward.Node = forwardNode
	seg.Backward = backwardNode
	seg.Forward = forwardNode

	seg.Line = append(seg.Line, meshCentroid(backward.Edges))
	seg.CoreSize = append(seg.CoreSize, backward.EdgeCount())
	tr.appendLinePoint(seg, forwardNode)

	tr.segments = append(tr.segments, seg)
	tr.dangling = append(tr.dangling, backwardNode, forwardNode)

	tr.traceSegment(backwardNode, circuitLength)
	tr.traceSegment(forwardNode, circuitLength)
}

// meshCentroid averages the origin positions of a ring of half-edges.
func meshCentroid(edges []*interfacemesh.HalfEdge) vec3.Point3 {
	base := edges[0].Origin.Position
	var sum vec3.Vector3
	for _, e := range edges {
		sum = sum.Add(e.Origin.Position.Sub(base))
	}
	return base.Add(sum.Scale(1 / float64(len(edges))))
}

// appendLinePoint appends one new line point at node's end, derived from
// its circuit's current centroid, wrapped through the simulation cell so
// the line itself never jumps a periodic image (spec.md §4.5.4). The
// circuit's current edge count is recorded alongside it in CoreSize, and
// the circuit's preliminary-point count grows by one: finishDislocationSegments
// trims exactly that many points back off, since they were never revisited
// once the circuit moved on.
func (tr *Tracer) appendLinePoint(seg *DislocationSegment, node *DislocationNode) {
	if node.Circuit == nil || len(node.Circuit.Edges) == 0 {
		return
	}
	raw := meshCentroid(node.Circuit.Edges)

	var anchor vec3.Point3
	if node.AtTail {
		anchor = seg.Line[0]
	} else {
		anchor = seg.Line[len(seg.Line)-1]
	}
	shift := tr.cell.ShiftVector(anchor, raw)
	wrapped := raw.Add(shift.Negate())
	size := node.Circuit.EdgeCount()

	if node.AtTail {
		seg.Line = append([]vec3.Point3{wrapped}, seg.Line...)
		seg.CoreSize = append([]int{size}, seg.CoreSize...)
	} else {
		seg.Line = append(seg.Line, wrapped)
		seg.CoreSize = append(seg.CoreSize, size)
	}
	node.Circuit.Preliminary++
}
