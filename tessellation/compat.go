package tessellation

import (
	"github.com/dxacore/dxacore/params"
)

// tetraFaces enumerates the four triangular faces of a tetrahedron's local
// vertices (0,1,2,3), each as an ordered triple (p,q,r) walked p->q, q->r,
// p->r for the Burgers-closure and Frank-rotation tests.
var tetraFaces = [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}

// IsCompatible implements isElasticMappingCompatible (spec.md §4.2): a
// tetrahedron is "good" iff, around each of its four faces, the Burgers
// closure is zero and the Frank rotation is the identity within tolerance.
// Any edge missing an assignment (B/Transition unset) also fails the test,
// since the closure cannot be evaluated.
func (em *ElasticMapping) IsCompatible(vertices [4]int) bool {
	for _, face := range tetraFaces {
		p, q, r := vertices[face[0]], vertices[face[1]], vertices[face[2]]

		pq := em.FindEdge(p, q)
		qr := em.FindEdge(q, r)
		pr := em.FindEdge(p, r)
		if pq == nil || qr == nil || pr == nil {
			return false
		}
		if !pq.Assigned || !qr.Assigned || !pr.Assigned {
			return false
		}
		if pq.Transition == nil || qr.Transition == nil || pr.Transition == nil {
			return false
		}

		t1Inv, err := pq.Transition.TM.Inverse()
		if err != nil {
			return false
		}
		closure := pq.B.Add(t1Inv.MulVec(qr.B)).Sub(pr.B)
		if !closure.IsApproxZero(params.LatticeVectorEpsilon) {
			return false
		}

		t3Inv, err := pr.Transition.TM.Inverse()
		if err != nil {
			return false
		}
		frank := t3Inv.Mul(qr.Transition.TM).Mul(pq.Transition.TM)
		if !frank.IsApproxIdentity(params.TransitionMatrixEpsilon) {
			return false
		}
	}
	return true
}
