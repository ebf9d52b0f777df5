package tessellation

import (
	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/pathfinder"
	"github.com/dxacore/dxacore/simcell"
	"github.com/dxacore/dxacore/structure"
)

// tetraEdges enumerates the six unordered vertex-index pairs of a
// tetrahedron's four local vertices (0,1,2,3).
var tetraEdges = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// Build constructs the tessellation edge list over every primary
// (non-ghost) cell of tess, assigns each edge an ideal lattice vector and
// cluster transition where possible, and returns the populated
// ElasticMapping.
//
// atoms is indexed by atom index (as used in Tessellation.CellVertices
// and structure.CNAAtom.Neighbors); clusterOf is the initial per-atom
// cluster assignment from saglue.BuildClusterGraph.
//
// Complexity: O(cells) for edge construction, O(n) per propagation pass
// (spec.md §4.2: "terminates because every step strictly reduces the
// unassigned count"), O(n*k) for ideal-vector assignment where k is
// pathfinder's bounded search cost.
func Build(tess Tessellation, atoms []structure.CNAAtom, cell simcell.SimulationCell, clusterOf []clustergraph.ClusterID, graph *clustergraph.Graph, maxPathLength int) (*ElasticMapping, error) {
	em := &ElasticMapping{
		leavingHead:  make(map[int]*TessellationEdge),
		arrivingHead: make(map[int]*TessellationEdge),
		ClusterOf:    append([]clustergraph.ClusterID(nil), clusterOf...),
	}

	if err := em.buildEdgeList(tess, atoms, cell); err != nil {
		return nil, err
	}
	em.propagateClusters()
	em.assignIdealVectors(atoms, graph, maxPathLength)

	return em, nil
}

func (em *ElasticMapping) buildEdgeList(tess Tessellation, atoms []structure.CNAAtom, cell simcell.SimulationCell) error {
	for c := 0; c < tess.CellCount(); c++ {
		if tess.IsGhost(c) {
			continue
		}
		verts := tess.CellVertices(c)
		for _, pair := range tetraEdges {
			a, b := verts[pair[0]], verts[pair[1]]
			if a == b {
				continue
			}
			if em.FindEdge(a, b) != nil {
				continue
			}
			delta := atoms[b].Position.Sub(atoms[a].Position)
			if wrapped, dim := cell.IsWrappedVector(delta); wrapped {
				return &simcell.TooSmallError{Dim: dim}
			}
			em.createEdgePair(a, b)
		}
	}
	return nil
}

func (em *ElasticMapping) createEdgePair(a, b int) {
	fwd := &TessellationEdge{V1: a, V2: b}
	rev := &TessellationEdge{V1: b, V2: a}
	fwd.Reverse = rev
	rev.Reverse = fwd

	fwd.nextLeaving = em.leavingHead[a]
	em.leavingHead[a] = fwd
	rev.nextArriving = em.arrivingHead[a]
	em.arrivingHead[a] = rev

	rev.nextLeaving = em.leavingHead[b]
	em.leavingHead[b] = rev
	fwd.nextArriving = em.arrivingHead[b]
	em.arrivingHead[b] = fwd

	em.edges = append(em.edges, fwd, rev)
}

// propagateClusters relaxes cluster membership from assigned vertices to
// their unassigned neighbors (via both leaving and arriving edges) until no
// further assignment is possible.
func (em *ElasticMapping) propagateClusters() {
	for {
		changed := false
		for _, e := range em.edges {
			if em.ClusterOf[e.V1] != clustergraph.NullClusterID && em.ClusterOf[e.V2] == clustergraph.NullClusterID {
				em.ClusterOf[e.V2] = em.ClusterOf[e.V1]
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// assignIdealVectors fills in B/Transition for every edge whose endpoints
// both belong to a non-null cluster (spec.md §4.2 "Ideal vectors").
func (em *ElasticMapping) assignIdealVectors(atoms []structure.CNAAtom, graph *clustergraph.Graph, maxPathLength int) {
	for _, e := range em.edges {
		c1, c2 := em.ClusterOf[e.V1], em.ClusterOf[e.V2]
		if c1 == clustergraph.NullClusterID || c2 == clustergraph.NullClusterID {
			continue
		}
		cluster1 := graph.FindCluster(c1)
		cluster2 := graph.FindCluster(c2)

		transition := graph.DetermineTransition(cluster1, cluster2)
		if transition == nil {
			continue
		}

		path, ok := pathfinder.Find(atoms, em.ClusterOf, graph, e.V1, e.V2, maxPathLength)
		if !ok {
			continue
		}

		b := path.Vec
		if path.Cluster != cluster1 {
			rotation := graph.DetermineTransition(path.Cluster, cluster1)
			if rotation == nil {
				continue
			}
			b = rotation.TM.MulVec(b)
		}

		e.B = b
		e.Assigned = true
		e.Transition = transition
	}
}
