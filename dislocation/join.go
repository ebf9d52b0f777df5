package dislocation

import (
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/vec3"
)

// joinSegments runs the three passes of spec.md §4.5.6 after every dangling
// node has been extended at the current circuitLength.
func (tr *Tracer) joinSegments(circuitLength int) {
	tr.passA(circuitLength)
	tr.passB()
	tr.passC()
}

// passA looks for secondary segments along the unvisited border of each
// dangling circuit (spec.md §4.5.6 pass A, "gap" construction).
//
// This handles the fully-open case directly: when every edge of a dangling
// circuit still has an unowned opposite, the inner-wall construction
// buildReverseCircuit already uses for backward circuits produces a valid
// alternative ring one layer in, and is reused here verbatim. Partial gaps
// (a circuit bordering swept territory on only part of its ring) would
// need a synthesized closing edge between the two open ends and are left
// unhandled — see DESIGN.md.
func (tr *Tracer) passA(circuitLength int) {
	for _, node := range tr.activeDangling() {
		circuit := node.Circuit
		if circuit == nil || len(circuit.Edges) < 3 {
			continue
		}
		fullyOpen := true
		for _, e := range circuit.Edges {
			if tr.edgeCircuit[e.Opposite] != nil {
				fullyOpen = false
				break
			}
		}
		if !fullyOpen {
			continue
		}
		inner := tr.buildReverseCircuit(circuit.Edges)
		b := ringBurgers(inner)
		if b.IsApproxZero(params.LatticeVectorEpsilon) {
			continue
		}
		tr.createBurgersCircuit(inner, b, circuitLength)
	}
}

// passB marks each dangling circuit completely blocked or not, then merges
// the junction rings of dangling nodes whose circuits border each other
// (spec.md §4.5.6 pass B).
func (tr *Tracer) passB() {
	active := tr.activeDangling()
	for _, node := range active {
		circuit := node.Circuit
		if circuit == nil {
			continue
		}
		blocked := true
		for _, e := range circuit.Edges {
			if tr.edgeCircuit[e.Opposite] == nil {
				blocked = false
				break
			}
		}
		circuit.CompletelyBlocked = blocked
	}
	for _, node := range active {
		circuit := node.Circuit
		if circuit == nil {
			continue
		}
		for _, e := range circuit.Edges {
			neighbor := tr.edgeCircuit[e.Opposite]
			if neighbor == nil || neighbor == circuit || neighbor.Node == nil {
				continue
			}
			other := neighbor.Node
			if other == node || other.Resolved {
				continue
			}
			connectNodes(node, other)
		}
	}
}

// passC materializes every junction ring formed by pass B: dissolving
// rings with no blocked member, closing/merging 2-arm rings, and fixing
// >=3-arm rings as real junctions (spec.md §4.5.6 pass C).
func (tr *Tracer) passC() {
	processed := make(map[*DislocationNode]bool)
	for _, node := range tr.activeDangling() {
		if processed[node] {
			continue
		}
		ring := node.JunctionRing()
		for _, n := range ring {
			processed[n] = true
		}

		anyBlocked := false
		for _, n := range ring {
			if n.Circuit != nil && n.Circuit.CompletelyBlocked {
				anyBlocked = true
			}
		}
		if !anyBlocked {
			for _, n := range ring {
				n.junctionRing = nil
			}
			continue
		}

		switch len(ring) {
		case 1:
			// blocked but alone: stays dangling until capped at
			// maxBurgersCircuitSize by the outer loop.
			ring[0].junctionRing = nil
		case 2:
			a, b := ring[0], ring[1]
			if a.Segment == b.Segment {
				tr.closeLoop(a, b)
			} else {
				tr.mergeSegments(a, b)
			}
		default:
			tr.materializeJunction(ring)
		}
	}
}

func (tr *Tracer) activeDangling() []*DislocationNode {
	var out []*DislocationNode
	for _, n := range tr.dangling {
		if !n.Resolved {
			out = append(out, n)
		}
	}
	return out
}

// closeLoop closes a segment whose two ends met each other, inserting one
// extra point so the polyline closes exactly (spec.md §4.5.6 pass C).
func (tr *Tracer) closeLoop(a, b *DislocationNode) {
	seg := a.Segment
	last := seg.Line[len(seg.Line)-1]
	shift := tr.cell.ShiftVector(last, seg.Line[0])
	seg.Line = append(seg.Line, seg.Line[0].Add(shift.Negate()))
	seg.CoreSize = append(seg.CoreSize, seg.CoreSize[0])
	a.Circuit.Preliminary = 0
	b.Circuit.Preliminary = 0
	a.Resolved = true
	b.Resolved = true
}

// mergeSegments absorbs two distinct segments meeting end-to-end into one,
// splicing their lines with a periodic-image correction (spec.md §4.5.6
// pass C's calculateShiftVector).
func (tr *Tracer) mergeSegments(a, b *DislocationNode) {
	aSeg, bSeg := a.Segment, b.Segment

	aLine := append([]vec3.Point3(nil), aSeg.Line...)
	aCoreSize := append([]int(nil), aSeg.CoreSize...)
	if a.AtTail {
		reversePoints(aLine)
		reverseInts(aCoreSize)
	}
	bLine := append([]vec3.Point3(nil), bSeg.Line...)
	bCoreSize := append([]int(nil), bSeg.CoreSize...)
	if !b.AtTail {
		reversePoints(bLine)
		reverseInts(bCoreSize)
	}

	shift := tr.cell.ShiftVector(aLine[len(aLine)-1], bLine[0])
	for i, p := range bLine {
		bLine[i] = p.Add(shift.Negate())
	}

	merged := append(aLine, bLine[1:]...)
	mergedCoreSize := append(aCoreSize, bCoreSize[1:]...)

	a.Circuit.Preliminary = 0
	b.Circuit.Preliminary = 0

	otherA := aSeg.Forward
	if otherA == a {
		otherA = aSeg.Backward
	}
	otherB := bSeg.Forward
	if otherB == b {
		otherB = bSeg.Backward
	}

	newSeg := &DislocationSegment{
		ID:          tr.newSegmentID(),
		Burgers:     aSeg.Burgers,
		HomeCluster: aSeg.HomeCluster,
		Line:        merged,
		CoreSize:    mergedCoreSize,
		Backward:    otherA,
		Forward:     otherB,
	}
	otherA.Segment = newSeg
	otherA.AtTail = true
	otherB.Segment = newSeg
	otherB.AtTail = false

	aSeg.ReplacedWith = newSeg
	bSeg.ReplacedWith = newSeg
	tr.segments = append(tr.segments, newSeg)
	tr.dangling = append(tr.dangling, otherA, otherB)

	a.Resolved = true
	b.Resolved = true
}

// materializeJunction fixes a >=3-arm ring as a real junction: its
// center-of-mass (with periodic wrapping) becomes the shared endpoint of
// every arm's line (spec.md §4.5.6 pass C).
func (tr *Tracer) materializeJunction(ring []*DislocationNode) {
	base := ring[0].LinePoint()
	var sum vec3.Vector3
	for _, n := range ring {
		p := n.LinePoint()
		shift := tr.cell.ShiftVector(base, p)
		sum = sum.Add(p.Add(shift.Negate()).Sub(base))
	}
	center := base.Add(sum.Scale(1 / float64(len(ring))))

	for _, n := range ring {
		if n.AtTail {
			n.Segment.Line = append([]vec3.Point3{center}, n.Segment.Line...)
			n.Segment.CoreSize = append([]int{n.Segment.CoreSize[0]}, n.Segment.CoreSize...)
		} else {
			n.Segment.Line = append(n.Segment.Line, center)
			n.Segment.CoreSize = append(n.Segment.CoreSize, n.Segment.CoreSize[len(n.Segment.CoreSize)-1])
		}
		if n.Circuit != nil {
			n.Circuit.Preliminary = 0
		}
		n.Resolved = true
	}
}

func reversePoints(pts []vec3.Point3) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
