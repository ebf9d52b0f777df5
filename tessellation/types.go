package tessellation

import (
	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/vec3"
)

// Tessellation is the minimal view of the tetrahedralization Elastic
// Mapping needs: how many cells there are, each cell's four atom-index
// vertices, and whether a cell is a periodic ghost image (excluded from
// primary enumeration, spec.md glossary "Ghost cell").
type Tessellation interface {
	CellCount() int
	CellVertices(cell int) [4]int
	IsGhost(cell int) bool
}

// TessellationEdge is one directed edge of the tetrahedralization, carrying
// an optional ideal lattice vector and the cluster transition along it
// (spec.md §3).
type TessellationEdge struct {
	// V1, V2 are the atom indices this edge connects, V1 -> V2.
	V1, V2 int

	// B is the ideal lattice vector from V1 to V2 in V1's cluster frame.
	// Assigned reports whether it has been computed.
	B        vec3.Vector3
	Assigned bool

	// Transition is the cluster transition from V1's cluster to V2's
	// cluster, queried from the cluster graph. Nil if unavailable.
	Transition *clustergraph.ClusterTransition

	// Reverse is the paired edge V2 -> V1. Invariant (spec.md §3): once
	// both edges are assigned, Reverse.B == Transition.Reverse.TM.MulVec(B.Negate()).
	Reverse *TessellationEdge

	nextLeaving  *TessellationEdge
	nextArriving *TessellationEdge
}

// ElasticMapping owns the tessellation edge arena and the per-vertex
// leaving/arriving intrusive lists (spec.md §3), plus the per-vertex
// cluster assignment it propagates from Structure Analysis.
type ElasticMapping struct {
	edges []*TessellationEdge

	leavingHead  map[int]*TessellationEdge
	arrivingHead map[int]*TessellationEdge

	// ClusterOf is the per-vertex (per-atom) cluster assignment, seeded
	// from saglue's output and then propagated by fixpoint relaxation
	// (spec.md §4.2 "Vertex-to-cluster assignment").
	ClusterOf []clustergraph.ClusterID
}

// Edges returns every directed edge built so far, in creation order.
func (em *ElasticMapping) Edges() []*TessellationEdge {
	out := make([]*TessellationEdge, len(em.edges))
	copy(out, em.edges)
	return out
}

// Leaving returns the edges leaving vertex v, in no particular order.
func (em *ElasticMapping) Leaving(v int) []*TessellationEdge {
	var out []*TessellationEdge
	for e := em.leavingHead[v]; e != nil; e = e.nextLeaving {
		out = append(out, e)
	}
	return out
}

// Arriving returns the edges arriving at vertex v, in no particular order.
func (em *ElasticMapping) Arriving(v int) []*TessellationEdge {
	var out []*TessellationEdge
	for e := em.arrivingHead[v]; e != nil; e = e.nextArriving {
		out = append(out, e)
	}
	return out
}

// FindEdge returns the edge v1 -> v2, or nil if no such edge was created.
//
// Complexity: O(degree(v1)).
func (em *ElasticMapping) FindEdge(v1, v2 int) *TessellationEdge {
	for e := em.leavingHead[v1]; e != nil; e = e.nextLeaving {
		if e.V2 == v2 {
			return e
		}
	}
	return nil
}
