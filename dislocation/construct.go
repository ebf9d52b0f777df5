package dislocation

import (
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/vec3"
)

// ringBurgers walks a closed ring of half-edges, composing cluster
// transitions as it goes, and returns the net lattice vector around the
// loop — zero for an ordinary closed loop, non-zero exactly when the ring
// encircles a dislocation.
func ringBurgers(ring []*interfacemesh.HalfEdge) vec3.Vector3 {
	t := mat3.Identity()
	var p vec3.Vector3
	for _, e := range ring {
		p = p.Add(t.MulVec(e.ClusterVector))
		t = e.ClusterTransition.TM.Mul(t)
	}
	return p
}

// createBurgersCircuit validates a candidate ring of half-edges (the
// geometry sanity checks of spec.md §4.5.2) and, if it passes, claims the
// edges, builds the paired backward circuit, and hands off to
// createAndTraceSegment.
func (tr *Tracer) createBurgersCircuit(ring []*interfacemesh.HalfEdge, burgers vec3.Vector3, circuitLength int) *BurgersCircuit {
	if len(ring) < 3 {
		return nil
	}

	seen := make(map[*interfacemesh.HalfEdge]bool, len(ring))
	for _, e := range ring {
		if seen[e] || tr.owned(e) {
			return nil
		}
		seen[e] = true
	}

	var physicalSum vec3.Vector3
	for _, e := range ring {
		physicalSum = physicalSum.Add(e.PhysicalVector)
	}
	if !physicalSum.IsApproxZero(params.AtomVectorEpsilon) {
		return nil
	}
	if burgers.IsApproxZero(params.LatticeVectorEpsilon) {
		return nil
	}

	forward := &BurgersCircuit{Edges: append([]*interfacemesh.HalfEdge(nil), ring...), Burgers: burgers}
	for _, e := range forward.Edges {
		tr.edgeCircuit[e] = forward
	}

	backward := &BurgersCircuit{Edges: tr.buildReverseCircuit(forward.Edges)}

	tr.createAndTraceSegment(forward, backward, circuitLength)
	return forward
}

// buildReverseCircuit derives the backward circuit: one half-edge ring
// running just inside the forward one (spec.md §4.5.3). For each corner
// where two consecutive forward edges meet, if the faces just inside the
// forward loop on either side of the corner coincide, the face's third edge
// is the exact inner edge at that corner; otherwise (the corner spans two
// distinct faces) the construction falls back to the immediate inward
// edge on the first face, a deliberate simplification of the reference
// two-face rim trace — see DESIGN.md.
func (tr *Tracer) buildReverseCircuit(forward []*interfacemesh.HalfEdge) []*interfacemesh.HalfEdge {
	n := len(forward)
	inner := make([]*interfacemesh.HalfEdge, 0, n)
	for i := 0; i < n; i++ {
		cur := forward[i]
		next := forward[(i+1)%n]
		faceA := cur.Opposite.Face
		faceB := next.Opposite.Face
		if faceA == faceB {
			e := faceA.Edge
			for k := 0; k < 3; k++ {
				if e != cur.Opposite && e != next.Opposite {
					inner = append(inner, e.Opposite)
					break
				}
				e = e.NextFaceEdge
			}
		} else {
			inner = append(inner, cur.Opposite)
		}
	}
	return inner
}
