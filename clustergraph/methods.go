package clustergraph

import (
	"container/heap"

	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/structure"
)

// CreateCluster inserts a new node into the graph. If id is AutoID, the next
// available ID (len(g.clusters)) is assigned; otherwise id is used directly
// (the caller is responsible for uniqueness — a duplicate id overwrites the
// map entry but not the clusters slice, mirroring the reference
// implementation's unchecked insert).
//
// Complexity: O(1) amortized.
func (g *Graph) CreateCluster(k structure.Kind, id ClusterID) *Cluster {
	if id < 0 {
		id = ClusterID(len(g.clusters))
	}
	c := &Cluster{ID: id, Structure: k, SymmetryPermutation: -1}
	g.clusters = append(g.clusters, c)
	g.clusterMap[id] = c
	return c
}

// FindCluster looks up the cluster with the given ID, or nil if unknown.
//
// Complexity: O(1) — fast path when id is a valid slice index whose cluster
// still carries that ID; dictionary lookup otherwise (spec.md §4.1).
func (g *Graph) FindCluster(id ClusterID) *Cluster {
	if int(id) >= 0 && int(id) < len(g.clusters) && g.clusters[id].ID == id {
		return g.clusters[id]
	}
	return g.clusterMap[id]
}

// insertSorted splices t into cluster c's outgoing list, keeping it ordered
// by ascending Distance. The self-transition (Distance 0) is always first.
func insertSorted(c *Cluster, t *ClusterTransition) {
	if c.transitions == nil || c.transitions.Distance > t.Distance {
		t.next = c.transitions
		c.transitions = t
		return
	}
	prev := c.transitions
	for prev.next != nil && prev.next.Distance <= t.Distance {
		prev = prev.next
	}
	t.next = prev.next
	prev.next = t
}

// CreateSelfTransition ensures c's outgoing list head is its identity
// transition, creating it if absent, and returns it.
//
// Complexity: O(1).
func (g *Graph) CreateSelfTransition(c *Cluster) *ClusterTransition {
	if c.transitions != nil && c.transitions.IsSelfTransition() {
		return c.transitions
	}
	t := &ClusterTransition{
		Source: c, Dest: c,
		TM:       mat3.Identity(),
		Distance: 0,
	}
	t.Reverse = t
	t.next = c.transitions
	c.transitions = t
	return t
}

// CreateClusterTransition registers a new transition between a and b with
// transformation matrix tm and hop count distance, creating the reverse
// transition b->a (tm inverted) atomically. If a == b and tm is within
// params.TransitionMatrixEpsilon of the identity, returns (creating if
// necessary) a's self-transition instead. If an existing transition to the
// same destination with a matching matrix is already present in a's
// outgoing list, that transition is returned unchanged.
//
// Complexity: O(degree(a)) to scan for an existing transition, O(1)
// amortized to insert a new one.
func (g *Graph) CreateClusterTransition(a, b *Cluster, tm mat3.Matrix3, distance int) *ClusterTransition {
	if a == b && tm.IsApproxIdentity(params.TransitionMatrixEpsilon) {
		return g.CreateSelfTransition(a)
	}

	for t := a.transitions; t != nil; t = t.next {
		if t.Dest == b && t.TM.ApproxEqual(tm, params.TransitionMatrixEpsilon) {
			return t
		}
	}

	inv, err := tm.Inverse()
	if err != nil {
		// A non-invertible transformation matrix would violate the
		// component's core algebraic contract (every transition is a
		// rotation); callers are expected never to pass a degenerate tm.
		inv = mat3.Identity()
	}

	tAB := &ClusterTransition{Source: a, Dest: b, TM: tm, Distance: distance}
	tBA := &ClusterTransition{Source: b, Dest: a, TM: inv, Distance: distance}
	tAB.Reverse = tBA
	tBA.Reverse = tAB

	insertSorted(a, tAB)
	insertSorted(b, tBA)

	g.transitions = append(g.transitions, tAB)

	if distance == 1 {
		g.disconnected = make(map[disconnectedKey]struct{})
	}

	return tAB
}

// isLeaf reports whether c has no transitions beyond (at most) its own
// self-transition, i.e. it cannot reach any other cluster directly.
func isLeaf(c *Cluster) bool {
	return c.transitions == nil || (c.transitions.IsSelfTransition() && c.transitions.next == nil)
}

func canonicalKey(a, b ClusterID) disconnectedKey {
	if a <= b {
		return disconnectedKey{a, b}
	}
	return disconnectedKey{b, a}
}

// searchState is one entry in DetermineTransition's bounded best-first
// search: the cluster reached, the cumulative distance to reach it, the
// number of graph hops used, and the chain of transitions composing the
// path (for later concatenation).
type searchState struct {
	cluster  *Cluster
	distance int
	hops     int
	path     []*ClusterTransition
}

// searchPQ is a min-heap of searchState ordered by cumulative distance,
// grounded on the teacher's graph.nodePQ (graph/dijkstra.go) container/heap
// shape.
type searchPQ []*searchState

func (pq searchPQ) Len() int            { return len(pq) }
func (pq searchPQ) Less(i, j int) bool  { return pq[i].distance < pq[j].distance }
func (pq searchPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *searchPQ) Push(x interface{}) { *pq = append(*pq, x.(*searchState)) }
func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// DetermineTransition finds the transformation matrix that transforms
// vectors from cluster a's frame to cluster b's frame, searching the graph
// for the shortest path (by cumulative Distance, bounded to g.maxDistance
// hops) connecting the two nodes. Returns nil if no such path exists within
// the bound.
//
// This generalizes the reference implementation's hardcoded depth-2 nested
// loop to a proper bounded best-first search, per spec.md §9's explicit
// permission ("A conforming implementation may generalize to a proper BFS so
// long as it preserves the canonicalization and negative cache"); at the
// default maxDistance of 2 it explores exactly the same candidate paths the
// reference nested loop does.
//
// Once found, the path is cached as a direct transition between a and b so
// future queries answer in O(1) (spec.md Property 2).
//
// Complexity: O(1) when a direct transition already exists or the pair is
// already known disconnected; otherwise bounded by the branching factor of
// the graph raised to maxDistance.
func (g *Graph) DetermineTransition(a, b *Cluster) *ClusterTransition {
	if a == b {
		return g.CreateSelfTransition(a)
	}

	for t := a.transitions; t != nil; t = t.next {
		if t.Dest == b {
			return t
		}
	}

	if isLeaf(a) || isLeaf(b) {
		return nil
	}

	reversed := false
	lo, hi := a, b
	if lo.ID > hi.ID {
		lo, hi = hi, lo
		reversed = true
	}

	key := canonicalKey(lo.ID, hi.ID)
	if _, known := g.disconnected[key]; known {
		return nil
	}

	best := g.boundedShortestPath(lo, hi)
	if best == nil {
		g.disconnected[key] = struct{}{}
		return nil
	}

	tm := best.path[0].TM
	for _, step := range best.path[1:] {
		tm = step.TM.Mul(tm)
	}
	newTransition := g.CreateClusterTransition(lo, hi, tm, best.distance)
	if reversed {
		return newTransition.Reverse
	}
	return newTransition
}

// boundedShortestPath runs a Dijkstra-style best-first search from `from`
// to `to`, expanding at most g.maxDistance hops, and returns the minimum
// cumulative-distance searchState reaching `to`, or nil.
func (g *Graph) boundedShortestPath(from, to *Cluster) *searchState {
	pq := &searchPQ{}
	heap.Init(pq)
	heap.Push(pq, &searchState{cluster: from, distance: 0, hops: 0})

	// visited[cluster] = best distance seen at any hop count so far;
	// since edge distances are positive, once popped a cluster's minimum
	// is final for hop counts <= the one it was popped at.
	visited := make(map[ClusterID]int)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*searchState)
		if cur.cluster == to && cur.hops > 0 {
			return cur
		}
		if cur.hops >= g.maxDistance {
			continue
		}
		if d, ok := visited[cur.cluster.ID]; ok && d < cur.distance {
			continue
		}
		visited[cur.cluster.ID] = cur.distance

		for t := cur.cluster.transitions; t != nil; t = t.next {
			if t.IsSelfTransition() || t.Dest == from {
				continue
			}
			nextPath := make([]*ClusterTransition, len(cur.path)+1)
			copy(nextPath, cur.path)
			nextPath[len(cur.path)] = t
			heap.Push(pq, &searchState{
				cluster:  t.Dest,
				distance: cur.distance + t.Distance,
				hops:     cur.hops + 1,
				path:     nextPath,
			})
		}
	}
	return nil
}

// ConcatenateTransitions folds tAB (A->B) and tBC (B->C) into a single A->C
// transition, per spec.md §4.1:
//   - if B->C is a self-transition, returns tAB unchanged (A==B==... no-op
//     through C==B).
//   - if A->B is a self-transition, returns tBC unchanged.
//   - if tAB and tBC are exact reverses of one another (A->B->A), returns
//     A's self-transition.
//   - otherwise creates/returns A->C with matrix tBC.TM * tAB.TM and
//     distance tAB.Distance + tBC.Distance.
//
// Complexity: O(degree(A)) (delegates to CreateClusterTransition).
func (g *Graph) ConcatenateTransitions(tAB, tBC *ClusterTransition) *ClusterTransition {
	if tBC.IsSelfTransition() {
		return tAB
	}
	if tAB.IsSelfTransition() {
		return tBC
	}
	if tAB.Reverse == tBC {
		return g.CreateSelfTransition(tAB.Source)
	}
	return g.CreateClusterTransition(tAB.Source, tBC.Dest, tBC.TM.Mul(tAB.TM), tAB.Distance+tBC.Distance)
}
