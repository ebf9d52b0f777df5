package interfacemesh

import (
	"fmt"

	"github.com/dxacore/dxacore/params"
)

// ErrInvariantViolated reports a debug-build-only invariant failure
// (spec.md §4.4 "Validation"; spec.md §7 InternalInvariantViolated: "Panic
// in tests; absent in release"). Validate is meant to be called from tests
// and from Debug-mode pipeline runs, never from the release path.
type ErrInvariantViolated struct {
	Reason string
}

func (e *ErrInvariantViolated) Error() string {
	return fmt.Sprintf("interfacemesh: invariant violated: %s", e.Reason)
}

// Validate checks every invariant spec.md §4.4 names for a freshly built
// mesh, returning the first violation found (or nil).
//
// Complexity: O(E) where E is the half-edge count.
func Validate(m *Mesh) error {
	for _, e := range m.HalfEdges() {
		if e.Opposite == nil {
			return &ErrInvariantViolated{Reason: fmt.Sprintf("half-edge from vertex %d has no opposite", e.Origin.AtomIndex)}
		}
		if e.Opposite.Opposite != e {
			return &ErrInvariantViolated{Reason: "opposite.opposite != self"}
		}
		sum := e.PhysicalVector.Add(e.Opposite.PhysicalVector)
		if !sum.IsApproxZero(params.AtomVectorEpsilon) {
			return &ErrInvariantViolated{Reason: "physicalVector is not anti-symmetric with its opposite"}
		}
		if e.ClusterTransition != nil {
			if e.Opposite.ClusterTransition == nil || e.ClusterTransition != e.Opposite.ClusterTransition.Reverse {
				return &ErrInvariantViolated{Reason: "clusterTransition is not the reverse of opposite's"}
			}
			rotated := e.ClusterTransition.TM.MulVec(e.Opposite.ClusterVector)
			if !e.ClusterVector.Add(rotated).IsApproxZero(params.LatticeVectorEpsilon) {
				return &ErrInvariantViolated{Reason: "clusterVector fails anti-symmetry under transition"}
			}
		}
	}

	for _, f := range m.faces {
		e := f.Edge
		count := 0
		for cur := e; ; {
			count++
			cur = cur.NextFaceEdge
			if cur == e {
				break
			}
			if count > 3 {
				return &ErrInvariantViolated{Reason: "face-edge cycle longer than 3"}
			}
		}
		if count != 3 {
			return &ErrInvariantViolated{Reason: "face-edge cycle is not length 3"}
		}
	}

	for _, v := range m.vertices {
		if err := validateFan(m, v); err != nil {
			return err
		}
	}

	return nil
}

// validateFan checks that rotating e -> e.Opposite.NextFaceEdge around v
// visits exactly the half-edges originating at v (a single manifold sheet,
// the point of shared-vertex separation).
func validateFan(m *Mesh, v *Vertex) error {
	var outgoing []*HalfEdge
	for _, e := range m.HalfEdges() {
		if e.Origin == v {
			outgoing = append(outgoing, e)
		}
	}
	if len(outgoing) == 0 {
		return nil
	}
	start := outgoing[0]
	visited := map[*HalfEdge]bool{start: true}
	for cur := start; ; {
		next := cur.Opposite.NextFaceEdge
		if next == start {
			break
		}
		if visited[next] {
			return &ErrInvariantViolated{Reason: "vertex fan rotation revisits an edge before closing"}
		}
		visited[next] = true
		cur = next
		if len(visited) > len(outgoing) {
			return &ErrInvariantViolated{Reason: "vertex fan rotation exceeds outgoing edge count"}
		}
	}
	if len(visited) != len(outgoing) {
		return &ErrInvariantViolated{Reason: "vertex has more than one manifold sheet after separation"}
	}
	return nil
}
