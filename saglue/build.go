package saglue

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/progress"
	"github.com/dxacore/dxacore/structure"
)

// Result is the outcome of BuildClusterGraph: the cluster assignment for
// every input atom and the largest neighbor-bond distance observed.
type Result struct {
	// ClusterOf maps atom index to the ClusterID it was assigned.
	// Non-crystalline atoms (structure.Other) are assigned
	// clustergraph.NullClusterID.
	ClusterOf []clustergraph.ClusterID

	// MaxNeighborDistance is the largest Euclidean distance between any
	// atom and one of its classified neighbors, returned to the caller as a
	// lattice-scale figure; no other package of this module reads it.
	MaxNeighborDistance float64
}

// BuildClusterGraph groups atoms into clusters and registers the
// transitions between adjacent clusters, mutating g in place.
//
// Complexity: O(n*k) where n is len(atoms) and k the average neighbor-list
// length: each atom and each of its neighbor bonds is visited once during
// the flood fill, plus the one-time parallel max-distance pass.
func BuildClusterGraph(atoms []structure.CNAAtom, g *clustergraph.Graph, handle progress.Handle) (Result, error) {
	if handle == nil {
		handle = progress.Nop{}
	}

	maxDist := maxNeighborDistance(atoms)

	clusterOf := make([]clustergraph.ClusterID, len(atoms))
	visited := make([]bool, len(atoms))

	handle.SetProgressMaximum(int64(len(atoms)))
	var queue []int
	for seed, atom := range atoms {
		if err := progress.CheckCanceled(handle); err != nil {
			return Result{}, err
		}
		handle.SetProgressValue(int64(seed))

		if visited[seed] {
			continue
		}
		if !atom.Structure.IsCrystalline() {
			visited[seed] = true
			continue
		}

		cluster := g.CreateCluster(atom.Structure, clustergraph.AutoID)
		cluster.Orientation = atom.LocalOrientation
		cluster.SymmetryPermutation = atom.SymmetryPermutation

		visited[seed] = true
		queue = append(queue[:0], seed)

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			clusterOf[cur] = cluster.ID
			cluster.AtomCount++

			for _, bond := range atoms[cur].Neighbors {
				nb := bond.Neighbor
				if atoms[nb].Structure != atom.Structure {
					continue
				}
				if visited[nb] {
					if other := clusterOf[nb]; other != clustergraph.NullClusterID && other != cluster.ID {
						registerTransition(g, cluster, g.FindCluster(other), atoms[cur].LocalOrientation, atoms[nb].LocalOrientation)
					}
					continue
				}
				if sameGrain(atoms[nb].LocalOrientation, cluster.Orientation, atom.Structure) {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}

	// A second pass picks up transitions between clusters whose flood
	// fills never visited each other's boundary atom directly in the loop
	// above (the neighbor relation is symmetric but discovery order is
	// not): any crystalline atom whose neighbor already belongs to a
	// different non-null cluster gets its transition registered here too.
	for cur, atom := range atoms {
		if !atom.Structure.IsCrystalline() || clusterOf[cur] == clustergraph.NullClusterID {
			continue
		}
		curCluster := g.FindCluster(clusterOf[cur])
		for _, bond := range atom.Neighbors {
			nb := bond.Neighbor
			if atoms[nb].Structure != atom.Structure {
				continue
			}
			other := clusterOf[nb]
			if other == clustergraph.NullClusterID || other == curCluster.ID {
				continue
			}
			registerTransition(g, curCluster, g.FindCluster(other), atom.LocalOrientation, atoms[nb].LocalOrientation)
		}
	}

	return Result{ClusterOf: clusterOf, MaxNeighborDistance: maxDist}, nil
}

// sameGrain reports whether a neighbor atom's local orientation belongs to
// the same physical grain as a cluster's representative orientation: either
// directly equal, or equal up to one of the structure's point-group
// symmetries (the same physical lattice admits several equally valid
// orientation-matrix representatives).
func sameGrain(neighborOrientation, clusterOrientation mat3.Matrix3, kind structure.Kind) bool {
	if neighborOrientation.ApproxEqual(clusterOrientation, params.AtomVectorEpsilon) {
		return true
	}
	for _, sym := range structure.LatticeConstants[kind].Symmetries {
		if sym.Mul(neighborOrientation).ApproxEqual(clusterOrientation, params.AtomVectorEpsilon) {
			return true
		}
	}
	return false
}

// registerTransition computes the rotation mapping a's local frame to b's
// local frame from their raw orientation matrices and registers it as a
// distance-1 transition in the graph.
func registerTransition(g *clustergraph.Graph, a, b *clustergraph.Cluster, aOrientation, bOrientation mat3.Matrix3) {
	if a == b {
		return
	}
	aInv, err := aOrientation.Inverse()
	if err != nil {
		return
	}
	tm := bOrientation.Mul(aInv)
	g.CreateClusterTransition(a, b, tm, 1)
}

// maxNeighborDistance computes the largest Euclidean distance between any
// atom and one of its neighbors, splitting the atom slice across
// GOMAXPROCS workers (spec.md §5: classification work is embarrassingly
// parallel with no shared mutable state besides this one running maximum).
// The running maximum is updated with a lock-free compare-and-swap loop on
// its IEEE-754 bit pattern, since multiple workers may race to raise it.
func maxNeighborDistance(atoms []structure.CNAAtom) float64 {
	if len(atoms) == 0 {
		return 0
	}

	var bits uint64
	workers := runtime.GOMAXPROCS(0)
	if workers > len(atoms) {
		workers = len(atoms)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(atoms) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(atoms) {
			hi = len(atoms)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			var localMax float64
			for i := lo; i < hi; i++ {
				for _, bond := range atoms[i].Neighbors {
					d := atoms[i].Position.Sub(atoms[bond.Neighbor].Position).Length()
					if d > localMax {
						localMax = d
					}
				}
			}
			raiseMax(&bits, localMax)
		}(lo, hi)
	}
	wg.Wait()

	return math.Float64frombits(atomic.LoadUint64(&bits))
}

// raiseMax atomically sets *bits to max(*bits, candidate) expressed as a
// float64, via compare-and-swap retry.
func raiseMax(bits *uint64, candidate float64) {
	candidateBits := math.Float64bits(candidate)
	for {
		cur := atomic.LoadUint64(bits)
		if math.Float64frombits(cur) >= candidate {
			return
		}
		if atomic.CompareAndSwapUint64(bits, cur, candidateBits) {
			return
		}
	}
}
