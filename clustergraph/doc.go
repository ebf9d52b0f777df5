// Package clustergraph owns the Cluster Graph: clusters (nodes) and cluster
// transitions (directed edges carrying a 3x3 rotation between two clusters'
// local frames), per spec.md §4.1.
//
// Ownership follows spec.md §9's "cyclic graph with arena ownership" Design
// Note: in a language without raw interior pointers this would be stable
// indices into per-kind arenas; in Go, *Cluster and *ClusterTransition are
// themselves stable heap pointers handed out by Graph and never relocated
// (Graph never stores clusters/transitions by value in a slice that could
// reallocate and invalidate outstanding pointers — every node is its own
// allocation, recorded in Graph's bookkeeping slices/maps only by pointer).
// This mirrors the teacher's core.Graph, which stores *Vertex/*Edge (not
// Vertex/Edge) in its adjacency maps for exactly this reason.
//
// The package offers:
//   - Cluster / ClusterTransition: the node and edge types (spec.md §3).
//   - Graph: CreateCluster, FindCluster, CreateClusterTransition,
//     CreateSelfTransition, DetermineTransition, ConcatenateTransitions.
//   - A negative-result ("disconnected pair") cache so repeated
//     DetermineTransition queries between unrelated clusters are O(1) after
//     the first miss (spec.md Property 2).
//
// Concurrency: Graph has no internal lock. Cluster-graph construction is
// single-threaded cooperative per spec.md §5, and Graph is not safe for
// concurrent use while it is mutated; DetermineTransition also mutates it,
// since it records newly found transitions and disconnected pairs.
package clustergraph
