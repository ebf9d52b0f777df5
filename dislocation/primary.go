package dislocation

import (
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/vec3"
)

// frontierState is one BFS node in findPrimarySegments: the half-edge just
// crossed to reach here, the accumulated lattice coordinates in the seed's
// frame, the transform from the seed's frame to this vertex's frame, and
// the chain of edges walked from the seed (needed to assemble a circuit on
// a merge).
type frontierState struct {
	edge *interfacemesh.HalfEdge
	p    vec3.Vector3
	t    mat3.Matrix3
	path []*interfacemesh.HalfEdge
}

type queueItem struct {
	state *frontierState
	depth int
}

// findPrimarySegments runs a bounded BFS from every mesh vertex, looking
// for a closed loop of half-edges with a non-zero Burgers vector
// (spec.md §4.5.1).
func (tr *Tracer) findPrimarySegments(circuitLength int) {
	maxDepth := (circuitLength - 1) / 2
	if maxDepth < 1 {
		return
	}
	for _, seed := range tr.mesh.Vertices() {
		tr.searchFrom(seed, maxDepth, circuitLength)
	}
}

func (tr *Tracer) searchFrom(seed *interfacemesh.Vertex, maxDepth, circuitLength int) {
	visited := make(map[*interfacemesh.Vertex]*frontierState)
	var queue []queueItem

	for _, e0 := range tr.mesh.Outgoing(seed) {
		if tr.owned(e0) {
			continue
		}
		fs := &frontierState{edge: e0, p: e0.ClusterVector, t: e0.ClusterTransition.TM, path: []*interfacemesh.HalfEdge{e0}}
		dest := e0.Dest()
		if old, ok := visited[dest]; ok {
			tr.tryCircuit(old, fs, circuitLength)
			continue
		}
		visited[dest] = fs
		queue = append(queue, queueItem{state: fs, depth: 1})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.depth >= maxDepth {
			continue
		}
		cur := item.state.edge.Dest()
		for _, e2 := range tr.mesh.Outgoing(cur) {
			if e2 == item.state.edge.Opposite || tr.owned(e2) {
				continue
			}
			newP := item.state.p.Add(item.state.t.MulVec(e2.ClusterVector))
			newT := e2.ClusterTransition.TM.Mul(item.state.t)
			path := make([]*interfacemesh.HalfEdge, len(item.state.path)+1)
			copy(path, item.state.path)
			path[len(item.state.path)] = e2
			ns := &frontierState{edge: e2, p: newP, t: newT, path: path}

			w := e2.Dest()
			if old, ok := visited[w]; ok {
				tr.tryCircuit(old, ns, circuitLength)
				continue
			}
			visited[w] = ns
			queue = append(queue, queueItem{state: ns, depth: item.depth + 1})
		}
	}
}

func (tr *Tracer) owned(e *interfacemesh.HalfEdge) bool {
	return tr.edgeCircuit[e] != nil || tr.faceSwept[e.Face] != nil
}

// tryCircuit tests whether closing new's branch against the
// previously-recorded branch old yields a valid dislocation circuit: a
// Burgers residue exceeding the lattice tolerance and a Frank rotation
// within the rotation tolerance of the identity (spec.md §4.5.1).
func (tr *Tracer) tryCircuit(old, new *frontierState, circuitLength int) {
	if old.edge == new.edge {
		return
	}
	b := old.p.Sub(new.p)
	if b.Length() <= params.LatticeVectorEpsilon {
		return
	}
	if !new.t.ApproxEqual(old.t, params.TransitionMatrixEpsilon) {
		return
	}

	ring := make([]*interfacemesh.HalfEdge, 0, len(new.path)+len(old.path))
	ring = append(ring, new.path...)
	for i := len(old.path) - 1; i >= 0; i-- {
		ring = append(ring, old.path[i].Opposite)
	}

	tr.createBurgersCircuit(ring, b, circuitLength)
}
