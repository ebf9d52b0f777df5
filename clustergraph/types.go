package clustergraph

import (
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/structure"
)

// ClusterID uniquely identifies a Cluster within a Graph. ID 0 is reserved
// for the null cluster, created automatically by NewGraph.
type ClusterID int

// NullClusterID is the ID of the "no crystal" placeholder cluster every
// Graph is seeded with.
const NullClusterID ClusterID = 0

// AutoID tells CreateCluster to assign the next available ID
// (len(g.clusters)) rather than a caller-chosen one.
const AutoID ClusterID = -1

// Cluster is a node in the Cluster Graph: a maximal contiguous region of
// atoms sharing a crystal structure and a consistent average orientation.
type Cluster struct {
	// ID uniquely identifies this cluster within its Graph.
	ID ClusterID

	// Structure is this cluster's crystal-structure tag. The null cluster
	// (ID 0) always has Structure == structure.Other.
	Structure structure.Kind

	// AtomCount is the number of atoms assigned to this cluster.
	AtomCount int

	// Orientation maps this cluster's local lattice frame to the
	// simulation frame.
	Orientation mat3.Matrix3

	// SymmetryPermutation optionally indexes into
	// structure.LatticeConstants[Structure].Symmetries, recording which
	// symmetry operation was used to normalize this cluster's orientation.
	// -1 if not applicable.
	SymmetryPermutation int

	// transitions is the head of this cluster's outgoing-transition list,
	// kept sorted by ascending Distance. If non-nil and Distance == 0, it is
	// the self-transition (spec.md §3 invariant).
	transitions *ClusterTransition
}

// IsNull reports whether c is the null cluster (ID 0, "no crystal").
func (c *Cluster) IsNull() bool {
	return c.ID == NullClusterID
}

// Transitions returns this cluster's outgoing transitions in ascending
// Distance order (the self-transition first, if present).
//
// Complexity: O(degree).
func (c *Cluster) Transitions() []*ClusterTransition {
	var out []*ClusterTransition
	for t := c.transitions; t != nil; t = t.next {
		out = append(out, t)
	}
	return out
}

// ClusterTransition is a directed edge in the Cluster Graph: a 3x3 rotation
// mapping Source's local frame to Dest's local frame.
type ClusterTransition struct {
	// Source is the transition's origin cluster.
	Source *Cluster

	// Dest is the transition's destination cluster.
	Dest *Cluster

	// TM maps a vector in Source's frame to the equivalent vector in Dest's
	// frame.
	TM mat3.Matrix3

	// Reverse is the paired transition Dest->Source, with TM == this TM's
	// inverse. Self-transitions are their own Reverse.
	Reverse *ClusterTransition

	// Distance is the number of primary (graph) hops this transition
	// represents. Self-transitions have Distance 0; transitions created
	// directly by CreateClusterTransition with distance 1 are primary
	// edges; transitions cached by DetermineTransition/
	// ConcatenateTransitions record the length of the path they summarize.
	Distance int

	// Area counts the number of contributing atomic bonds this transition
	// was observed across, accumulated by callers (clustergraph itself
	// never increments it).
	Area int

	// next links to the next transition in Source's outgoing list, ordered
	// by ascending Distance.
	next *ClusterTransition
}

// IsSelfTransition reports whether t is a cluster's identity transition to
// itself (Distance == 0).
func (t *ClusterTransition) IsSelfTransition() bool {
	return t.Distance == 0
}

// disconnectedKey canonicalizes an unordered cluster pair for the
// disconnected-pair cache: always (smaller ID, larger ID).
type disconnectedKey struct {
	a, b ClusterID
}

// Graph owns every Cluster and ClusterTransition created through it.
// Graph is not safe for concurrent mutation from multiple goroutines at
// once (construction is single-threaded cooperative, per spec.md §5); reads
// after construction has finished are safe from any goroutine.
type Graph struct {
	clusters    []*Cluster
	clusterMap  map[ClusterID]*Cluster
	transitions []*ClusterTransition // global list; self-transitions excluded

	disconnected map[disconnectedKey]struct{}

	maxDistance int
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithMaxClusterDistance overrides the bounded-hop search depth
// DetermineTransition uses (default params.DefaultMaxClusterDistance).
func WithMaxClusterDistance(n int) Option {
	return func(g *Graph) {
		if n >= 1 {
			g.maxDistance = n
		}
	}
}

// NewGraph constructs a Graph containing only the null cluster (ID 0,
// structure.Other), matching spec.md §3's "the initial graph contains the
// null cluster (id 0)".
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		clusterMap:   make(map[ClusterID]*Cluster),
		disconnected: make(map[disconnectedKey]struct{}),
		maxDistance:  params.DefaultMaxClusterDistance,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.CreateCluster(structure.Other, NullClusterID)
	return g
}

// Clusters returns every cluster in the graph, including the null cluster,
// in creation order.
func (g *Graph) Clusters() []*Cluster {
	out := make([]*Cluster, len(g.clusters))
	copy(out, g.clusters)
	return out
}

// ClusterTransitions returns the global list of non-self transitions, one
// entry per pair (the reverse is reachable via .Reverse, not listed
// separately), matching the original engine's "_clusterTransitions... for
// this, we need to add only one of them."
func (g *Graph) ClusterTransitions() []*ClusterTransition {
	out := make([]*ClusterTransition, len(g.transitions))
	copy(out, g.transitions)
	return out
}
