package dislocation

import (
	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/vec3"
)

// SegmentID identifies a DislocationSegment within a Network, consecutively
// renumbered by finishDislocationSegments.
type SegmentID int

// DislocationSegment is one traced dislocation line.
type DislocationSegment struct {
	ID SegmentID

	// Burgers is the segment's Burgers vector, expressed in HomeCluster's
	// local frame.
	Burgers     vec3.Vector3
	HomeCluster *clustergraph.Cluster

	// Line is the polyline of points tracing the defect, in simulation
	// coordinates, from Backward's end to Forward's end.
	Line []vec3.Point3

	// CoreSize runs parallel to Line: CoreSize[i] is the number of
	// half-edges in the Burgers circuit that produced Line[i].
	CoreSize []int

	Forward  *DislocationNode
	Backward *DislocationNode

	// ReplacedWith is set when this segment is absorbed by a merge
	// (spec.md §4.5.6 pass C); external references should follow it.
	ReplacedWith *DislocationSegment
}

// DislocationNode is one end of a segment: either still dangling (actively
// being traced or extended) or resolved into a junction ring with other
// nodes.
type DislocationNode struct {
	Segment *DislocationSegment
	AtTail  bool // true if this node is Segment.Backward, false if Forward

	// Circuit is the Burgers circuit anchoring this end. It is kept after
	// the node has materialized into a fixed junction or closed loop
	// (spec.md §4.5.6 pass C); Resolved marks that state.
	Circuit *BurgersCircuit

	// Resolved is set by joinSegments pass C once this end has
	// materialized into a closed loop, a merge, or a fixed junction —
	// it no longer takes part in further tracing.
	Resolved bool

	// junctionRing links this node into a circular list of nodes sharing
	// one junction; nil means "not yet linked to any other node".
	junctionRing *DislocationNode
}

// IsDangling reports whether n is still actively available for tracing.
func (n *DislocationNode) IsDangling() bool {
	return !n.Resolved
}

// LinePoint returns n's current endpoint on its segment's polyline: the
// first point if n anchors the tail, the last if it anchors the head.
func (n *DislocationNode) LinePoint() vec3.Point3 {
	if n.AtTail {
		return n.Segment.Line[0]
	}
	return n.Segment.Line[len(n.Segment.Line)-1]
}

// JunctionRing returns every node sharing n's junction ring (including n).
func (n *DislocationNode) JunctionRing() []*DislocationNode {
	if n.junctionRing == nil {
		return []*DislocationNode{n}
	}
	var out []*DislocationNode
	for cur := n; ; {
		out = append(out, cur)
		cur = cur.junctionRing
		if cur == n {
			break
		}
	}
	return out
}

// connectNodes merges a's and b's junction rings into one.
func connectNodes(a, b *DislocationNode) {
	if a.junctionRing == nil {
		a.junctionRing = a
	}
	if b.junctionRing == nil {
		b.junctionRing = b
	}
	if a.JunctionRingContains(b) {
		return
	}
	a.junctionRing, b.junctionRing = b.junctionRing, a.junctionRing
}

// JunctionRingContains reports whether other already shares n's ring.
func (n *DislocationNode) JunctionRingContains(other *DislocationNode) bool {
	for _, m := range n.JunctionRing() {
		if m == other {
			return true
		}
	}
	return false
}

// BurgersCircuit is a closed ring of half-edges on the interface mesh with
// a non-zero net Burgers vector. Edges is kept in ring order (edge i's
// destination is edge i+1's origin, cyclically).
type BurgersCircuit struct {
	Edges   []*interfacemesh.HalfEdge
	Node    *DislocationNode
	Burgers vec3.Vector3

	// MeshCap snapshots the ring the first time the circuit length reaches
	// MaxTrialCircuitSize while this end is dangling; later extension does
	// not update it. The defect mesh (package defectmesh) caps the
	// segment's end with it (spec.md §4.5.7 step 4).
	MeshCap []*interfacemesh.HalfEdge

	// CompletelyBlocked records pass B's blockage test result
	// (spec.md §4.5.6).
	CompletelyBlocked bool

	// Preliminary counts the line points appended at this circuit's end
	// since it last stabilized (a junction formed, or the ring was
	// snapshotted into MeshCap). finishDislocationSegments trims exactly
	// this many points off each end, rather than guessing from geometry.
	Preliminary int
}

// EdgeCount returns the number of half-edges currently in the ring.
func (c *BurgersCircuit) EdgeCount() int {
	return len(c.Edges)
}

// Network is the finished output of the tracer: every non-absorbed segment,
// consecutively numbered, plus which interface-mesh faces were swept and by
// which circuit (package defectmesh uses this to decide which faces to drop
// per spec.md §4.6).
type Network struct {
	Segments   []*DislocationSegment
	SweptFaces map[*interfacemesh.Face]*BurgersCircuit
}
