package dislocation

import (
	"math"

	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/latticefamily"
	"github.com/dxacore/dxacore/structure"
)

// Run drives the full tracer: primary circuit search, advancement, and
// junction formation at every circuit length from 3 up to
// maxExtendedBurgersCircuitSize, then finalization (spec.md §4.5.7,
// §4.5.8).
func (tr *Tracer) Run() *Network {
	maxExtended := tr.params.MaxExtendedCircuitSize()
	for circuitLength := 3; circuitLength <= maxExtended; circuitLength++ {
		for _, node := range tr.activeDangling() {
			tr.traceSegment(node, circuitLength)
		}
		if circuitLength <= tr.params.MaxTrialCircuitSize && circuitLength%2 == 1 {
			tr.findPrimarySegments(circuitLength)
		}
		tr.joinSegments(circuitLength)
		if circuitLength >= tr.params.MaxTrialCircuitSize {
			for _, node := range tr.activeDangling() {
				if node.Circuit != nil && len(node.Circuit.MeshCap) == 0 {
					node.Circuit.MeshCap = append([]*interfacemesh.HalfEdge(nil), node.Circuit.Edges...)
					node.Circuit.Preliminary = 0
				}
			}
		}
	}
	tr.finishDislocationSegments()
	return &Network{Segments: tr.liveSegments(), SweptFaces: tr.faceSwept}
}

func (tr *Tracer) liveSegments() []*DislocationSegment {
	var out []*DislocationSegment
	for _, s := range tr.segments {
		if s.ReplacedWith == nil {
			out = append(out, s)
		}
	}
	return out
}

// finishDislocationSegments trims, renumbers, reframes, and canonicalizes
// every surviving segment (spec.md §4.5.8).
func (tr *Tracer) finishDislocationSegments() {
	live := tr.liveSegments()

	for _, seg := range live {
		trimPreliminaryPoints(seg)
	}

	for i, seg := range live {
		seg.ID = SegmentID(i)
	}

	for _, seg := range live {
		tr.reframeToPreferredStructure(seg)
	}

	if tr.params.OnlyPerfectDislocations {
		live = filterPerfect(live)
		for i, seg := range live {
			seg.ID = SegmentID(i)
		}
	}

	for _, seg := range live {
		canonicalizeOrientation(seg)
	}

	tr.segments = live
}

// reframeToPreferredStructure rotates a segment's Burgers vector into one
// of Parameters.PreferredCrystalOrientations, if its home cluster isn't
// already one and a direct (distance<=1) transition reaches one.
func (tr *Tracer) reframeToPreferredStructure(seg *DislocationSegment) {
	if len(tr.params.PreferredCrystalOrientations) == 0 || seg.HomeCluster == nil {
		return
	}
	if isPreferred(seg.HomeCluster.Structure, tr.params.PreferredCrystalOrientations) {
		return
	}
	for _, t := range seg.HomeCluster.Transitions() {
		if t.Distance > 1 {
			break
		}
		if isPreferred(t.Dest.Structure, tr.params.PreferredCrystalOrientations) {
			seg.Burgers = t.TM.MulVec(seg.Burgers)
			seg.HomeCluster = t.Dest
			return
		}
	}
}

func isPreferred(k structure.Kind, preferred []structure.Kind) bool {
	for _, p := range preferred {
		if p == k {
			return true
		}
	}
	return false
}

func filterPerfect(segs []*DislocationSegment) []*DislocationSegment {
	var out []*DislocationSegment
	for _, seg := range segs {
		kind := structure.Other
		if seg.HomeCluster != nil {
			kind = seg.HomeCluster.Structure
		}
		if latticefamily.IsPerfect(kind, seg.Burgers, latticefamily.DefaultAlignmentCosine) {
			out = append(out, seg)
		}
	}
	return out
}

// canonicalizeOrientation picks the dominant component of the end-to-start
// vector; if negative, flips the segment's line and Burgers vector so every
// segment's dominant axis runs positive (spec.md §4.5.8).
func canonicalizeOrientation(seg *DislocationSegment) {
	if len(seg.Line) < 2 {
		return
	}
	d := seg.Line[len(seg.Line)-1].Sub(seg.Line[0])
	comps := [3]float64{d.X, d.Y, d.Z}
	dominant := 0
	for i := 1; i < 3; i++ {
		if math.Abs(comps[i]) > math.Abs(comps[dominant]) {
			dominant = i
		}
	}
	if comps[dominant] >= 0 {
		return
	}
	flipOrientation(seg)
}

func flipOrientation(seg *DislocationSegment) {
	for i, j := 0, len(seg.Line)-1; i < j; i, j = i+1, j-1 {
		seg.Line[i], seg.Line[j] = seg.Line[j], seg.Line[i]
	}
	for i, j := 0, len(seg.CoreSize)-1; i < j; i, j = i+1, j-1 {
		seg.CoreSize[i], seg.CoreSize[j] = seg.CoreSize[j], seg.CoreSize[i]
	}
	seg.Burgers = seg.Burgers.Negate()
	seg.Forward, seg.Backward = seg.Backward, seg.Forward
	if seg.Forward != nil {
		seg.Forward.AtTail = false
	}
	if seg.Backward != nil {
		seg.Backward.AtTail = true
	}
}

// trimPreliminaryPoints drops the line points recorded at each end since
// that end's circuit last stabilized: they were sampled while the circuit
// was still being shortened or extended at the current trial size, and
// never confirmed once the segment resolved into a junction, loop, or
// trial-size snapshot (spec.md §4.5.8).
func trimPreliminaryPoints(seg *DislocationSegment) {
	var back, forward int
	if seg.Backward != nil && seg.Backward.Circuit != nil {
		back = seg.Backward.Circuit.Preliminary
	}
	if seg.Forward != nil && seg.Forward.Circuit != nil {
		forward = seg.Forward.Circuit.Preliminary
	}
	seg.Line = seg.Line[back : len(seg.Line)-forward]
	seg.CoreSize = seg.CoreSize[back : len(seg.CoreSize)-forward]
}
