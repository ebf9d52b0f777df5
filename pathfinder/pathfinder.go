package pathfinder

import (
	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/vec3"
)

// ClusterVector is a Cartesian triple expressed in a specific cluster's
// local frame (spec.md §3). Cluster is nil for the frameless zero vector.
type ClusterVector struct {
	Vec     vec3.Vector3
	Cluster *clustergraph.Cluster
}

// IsZero reports whether v is the zero vector (regardless of frame).
func (v ClusterVector) IsZero(eps float64) bool {
	return v.Vec.IsApproxZero(eps)
}

// frontier is one BFS frontier node: the atom reached and the accumulated
// ClusterVector along the path that reached it.
type frontier struct {
	atom int
	acc  ClusterVector
}

// Find searches, starting from atom index `start`, for a path through
// neighbor bonds to atom index `dest`, accumulating lattice vectors along
// the way, bounded to maxPathLength hops (spec.md §4.3 default 2 for edge
// vectors). atoms and clusterOf are parallel arrays (one entry per atom);
// graph is the Cluster Graph used to rotate step vectors into a common
// frame whenever the path crosses a cluster boundary.
//
// Returns (vector, true) on success; (zero, false) if no path within the
// bound connects start to dest.
//
// Complexity: O(b^maxPathLength) worst case, where b is the average
// neighbor-list length; maxPathLength is small (2 by default) so this is
// effectively O(1) per query.
func Find(atoms []structure.CNAAtom, clusterOf []clustergraph.ClusterID, graph *clustergraph.Graph, start, dest, maxPathLength int) (ClusterVector, bool) {
	if start == dest {
		return ClusterVector{}, true
	}

	visited := make(map[int]bool, 8)
	visited[start] = true

	startCluster := graph.FindCluster(clusterOf[start])
	queue := []frontier{{atom: start, acc: ClusterVector{Cluster: startCluster}}}

	for depth := 0; len(queue) > 0 && depth < maxPathLength; depth++ {
		var next []frontier
		for _, node := range queue {
			for _, bond := range atoms[node.atom].Neighbors {
				nb := bond.Neighbor
				if visited[nb] {
					continue
				}
				step, stepFrame, ok := stepVector(atoms, node.atom, nb, bond)
				if !ok {
					continue
				}
				acc, ok := accumulate(graph, node.acc, step, clusterOf[stepFrame])
				if !ok {
					continue
				}
				if nb == dest {
					return acc, true
				}
				visited[nb] = true
				next = append(next, frontier{atom: nb, acc: acc})
			}
		}
		queue = next
	}
	return ClusterVector{}, false
}

// stepVector returns the ideal lattice vector from `center` to `neighbor`
// and the atom whose cluster frame that vector is expressed in. If center's
// cluster is the null cluster, it falls back to a reverse lookup through
// neighbor's own neighbor list (spec.md §4.3: "if the center is the null
// cluster, the search tries a reverse lookup through the neighbor's own
// neighbor list").
func stepVector(atoms []structure.CNAAtom, center, neighbor int, bond structure.NeighborBond) (vec3.Vector3, int, bool) {
	if atoms[center].Structure != structure.Other {
		return bond.IdealVector, center, true
	}
	for _, rev := range atoms[neighbor].Neighbors {
		if rev.Neighbor == center {
			return rev.IdealVector.Negate(), neighbor, true
		}
	}
	return vec3.Vector3{}, 0, false
}

// accumulate adds step (expressed in the frame of cluster stepFrame) to acc,
// rotating step into acc's frame via the cluster graph if the frames
// differ, or adopting stepFrame's cluster as the new frame if acc was still
// frameless (the start of the search, before any cluster has been chosen).
func accumulate(graph *clustergraph.Graph, acc ClusterVector, step vec3.Vector3, stepFrame clustergraph.ClusterID) (ClusterVector, bool) {
	stepCluster := graph.FindCluster(stepFrame)
	if stepCluster == nil || stepCluster.IsNull() {
		return ClusterVector{}, false
	}
	if acc.Cluster == nil || acc.Cluster.IsNull() {
		return ClusterVector{Vec: step, Cluster: stepCluster}, true
	}
	if acc.Cluster == stepCluster {
		return ClusterVector{Vec: acc.Vec.Add(step), Cluster: acc.Cluster}, true
	}
	t := graph.DetermineTransition(stepCluster, acc.Cluster)
	if t == nil {
		return ClusterVector{}, false
	}
	rotated := t.TM.MulVec(step)
	return ClusterVector{Vec: acc.Vec.Add(rotated), Cluster: acc.Cluster}, true
}
