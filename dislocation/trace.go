package dislocation

import "github.com/dxacore/dxacore/interfacemesh"

// traceSegment advances node's circuit by repeatedly applying the
// shortening/sweeping moves (rules 1-4) and, failing those, the extension
// move (rule 5), until the circuit reaches maxCircuitLength edges or no
// move applies (spec.md §4.5.5). Every successful move appends one line
// point.
func (tr *Tracer) traceSegment(node *DislocationNode, maxCircuitLength int) {
	circuit := node.Circuit
	if circuit == nil {
		return
	}
	for circuit.EdgeCount() < maxCircuitLength {
		if tr.applyShortening(circuit) {
			tr.appendLinePoint(node.Segment, node)
			continue
		}
		if !tr.applyExtension(circuit) {
			break
		}
		tr.appendLinePoint(node.Segment, node)
	}
}

// applyShortening tries rules 1-4, in order, at a randomly-chosen scan
// start around the ring, and applies the first one that fires.
func (tr *Tracer) applyShortening(circuit *BurgersCircuit) bool {
	n := circuit.EdgeCount()
	if n == 0 {
		return false
	}
	start := tr.rng.Intn(n)
	for offset := 0; offset < n; offset++ {
		i := (start + offset) % circuit.EdgeCount()
		if tr.ruleBight(circuit, i) {
			return true
		}
		if tr.ruleSweepOneFace(circuit, i) {
			return true
		}
		if tr.ruleReplaceWithInnerEdge(circuit, i) {
			return true
		}
		if tr.ruleSweepTwoFacets(circuit, i) {
			return true
		}
	}
	return false
}

// applyExtension scans for rule 5 (circuit extension into a free face),
// once, at a randomly-chosen start.
func (tr *Tracer) applyExtension(circuit *BurgersCircuit) bool {
	n := circuit.EdgeCount()
	if n == 0 {
		return false
	}
	start := tr.rng.Intn(n)
	for offset := 0; offset < n; offset++ {
		i := (start + offset) % circuit.EdgeCount()
		if tr.ruleExtendIntoFreeFace(circuit, i) {
			return true
		}
	}
	return false
}

// releaseAndClaim removes count ring entries starting at i (cyclically),
// releasing their ownership, splices in replacement, and claims ownership
// of the replacement edges for circuit.
func (tr *Tracer) releaseAndClaim(circuit *BurgersCircuit, i, count int, replacement []*interfacemesh.HalfEdge) {
	n := len(circuit.Edges)
	removed := make(map[int]bool, count)
	for k := 0; k < count; k++ {
		idx := (i + k) % n
		removed[idx] = true
		delete(tr.edgeCircuit, circuit.Edges[idx])
	}

	next := make([]*interfacemesh.HalfEdge, 0, n-count+len(replacement))
	inserted := false
	for idx := 0; idx < n; idx++ {
		if removed[idx] {
			if !inserted && idx == i%n {
				next = append(next, replacement...)
				inserted = true
			}
			continue
		}
		next = append(next, circuit.Edges[idx])
	}
	if !inserted {
		next = append(next, replacement...)
	}
	circuit.Edges = next

	for _, e := range replacement {
		tr.edgeCircuit[e] = circuit
	}
}

func chains(a, b *interfacemesh.HalfEdge) bool {
	return a.Dest() == b.Origin
}

// thirdEdge returns the half-edge of f other than the two given.
func thirdEdge(f *interfacemesh.Face, a, b *interfacemesh.HalfEdge) *interfacemesh.HalfEdge {
	e := f.Edge
	for k := 0; k < 3; k++ {
		if e != a && e != b {
			return e
		}
		e = e.NextFaceEdge
	}
	return nil
}

// ruleBight implements spec.md §4.5.5 rule 1: two consecutive circuit edges
// that are each other's opposite collapse to nothing.
func (tr *Tracer) ruleBight(circuit *BurgersCircuit, i int) bool {
	n := circuit.EdgeCount()
	if n < 2 {
		return false
	}
	j := (i + 1) % n
	if circuit.Edges[i].Opposite != circuit.Edges[j] {
		return false
	}
	tr.releaseAndClaim(circuit, i, 2, nil)
	return true
}

// ruleSweepOneFace implements rule 2: three consecutive circuit edges
// bordering one unswept triangular face are consumed entirely.
func (tr *Tracer) ruleSweepOneFace(circuit *BurgersCircuit, i int) bool {
	n := circuit.EdgeCount()
	if n < 3 {
		return false
	}
	e0 := circuit.Edges[i]
	e1 := circuit.Edges[(i+1)%n]
	e2 := circuit.Edges[(i+2)%n]
	face := e0.Face
	if e1.Face != face || e2.Face != face {
		return false
	}
	if tr.faceSwept[face] != nil {
		return false
	}
	tr.faceSwept[face] = circuit
	face.Flag = true
	tr.releaseAndClaim(circuit, i, 3, nil)
	return true
}

// ruleReplaceWithInnerEdge implements rule 3: two consecutive circuit edges
// sharing a face (whose third edge is elsewhere) collapse to that third
// edge's opposite.
func (tr *Tracer) ruleReplaceWithInnerEdge(circuit *BurgersCircuit, i int) bool {
	n := circuit.EdgeCount()
	if n < 2 {
		return false
	}
	j := (i + 1) % n
	e0 := circuit.Edges[i]
	e1 := circuit.Edges[j]
	if e0.Face != e1.Face {
		return false
	}
	face := e0.Face
	if tr.faceSwept[face] != nil {
		return false
	}
	third := thirdEdge(face, e0, e1)
	if third == nil {
		return false
	}
	tr.faceSwept[face] = circuit
	tr.releaseAndClaim(circuit, i, 2, []*interfacemesh.HalfEdge{third.Opposite})
	return true
}

// ruleSweepTwoFacets implements rule 4: two consecutive circuit edges
// pointing into two distinct unswept faces joined by a shared inner edge
// are replaced by the two faces' outer edges, sweeping both faces.
func (tr *Tracer) ruleSweepTwoFacets(circuit *BurgersCircuit, i int) bool {
	n := circuit.EdgeCount()
	if n < 2 {
		return false
	}
	j := (i + 1) % n
	e0 := circuit.Edges[i]
	e1 := circuit.Edges[j]
	faceA, faceB := e0.Face, e1.Face
	if faceA == faceB || tr.faceSwept[faceA] != nil || tr.faceSwept[faceB] != nil {
		return false
	}

	aOthers := faceOthers(faceA, e0)
	bOthers := faceOthers(faceB, e1)

	for _, a := range aOthers {
		for _, b := range bOthers {
			if a.Opposite != b {
				continue
			}
			var outerA, outerB *interfacemesh.HalfEdge
			for _, x := range aOthers {
				if x != a {
					outerA = x
				}
			}
			for _, x := range bOthers {
				if x != b {
					outerB = x
				}
			}
			if outerA == nil || outerB == nil {
				continue
			}
			var replacement []*interfacemesh.HalfEdge
			if chains(outerA, outerB) {
				replacement = []*interfacemesh.HalfEdge{outerA, outerB}
			} else if chains(outerB, outerA) {
				replacement = []*interfacemesh.HalfEdge{outerB, outerA}
			} else {
				continue
			}
			tr.faceSwept[faceA] = circuit
			tr.faceSwept[faceB] = circuit
			tr.releaseAndClaim(circuit, i, 2, replacement)
			return true
		}
	}
	return false
}

// faceOthers returns f's two half-edges other than skip.
func faceOthers(f *interfacemesh.Face, skip *interfacemesh.HalfEdge) []*interfacemesh.HalfEdge {
	var out []*interfacemesh.HalfEdge
	e := f.Edge
	for k := 0; k < 3; k++ {
		if e != skip {
			out = append(out, e)
		}
		e = e.NextFaceEdge
	}
	return out
}

// ruleExtendIntoFreeFace implements rule 5: a circuit edge bordering a free
// (unswept, unowned-on-both-other-sides) face is replaced by that face's
// two other edges, growing the circuit by one.
func (tr *Tracer) ruleExtendIntoFreeFace(circuit *BurgersCircuit, i int) bool {
	e0 := circuit.Edges[i]
	face := e0.Opposite.Face
	if tr.faceSwept[face] != nil {
		return false
	}
	others := faceOthers(face, e0.Opposite)
	if len(others) != 2 {
		return false
	}
	for _, o := range others {
		if tr.edgeCircuit[o] != nil {
			return false
		}
	}
	var replacement []*interfacemesh.HalfEdge
	if chains(others[0], others[1]) {
		replacement = []*interfacemesh.HalfEdge{others[0], others[1]}
	} else if chains(others[1], others[0]) {
		replacement = []*interfacemesh.HalfEdge{others[1], others[0]}
	} else {
		return false
	}
	tr.releaseAndClaim(circuit, i, 1, replacement)
	return true
}
