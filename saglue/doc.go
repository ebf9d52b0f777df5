// Package saglue is the Structure Analysis glue (spec.md §2 item 1, "SA
// glue", ≈10% of the core): it does not classify atoms itself — Common
// Neighbor Analysis is explicitly out of scope (spec.md §1) and package
// structure only carries the resulting structure.CNAAtom records — but it
// turns that per-atom classification into the Cluster Graph: grouping
// contiguous, consistently-oriented atoms of the same crystal structure
// into a clustergraph.Cluster and registering a clustergraph.ClusterTransition
// wherever two clusters of compatible structure meet.
//
// This package imports both structure and clustergraph, which is exactly
// why it cannot live in either of them: structure must stay a leaf so
// clustergraph (which needs structure.Kind for Cluster.Structure) does not
// import it back.
//
// Grouping is a single-threaded cooperative flood fill (spec.md §5) driven
// by BuildClusterGraph, cancelable via a progress.Handle. The one
// embarrassingly-parallel step — computing the maximum neighbor bond
// distance across all atoms, reported in Result as a lattice-scale
// figure — is run across goroutines with a lock-free compare-and-swap loop
// on the running maximum (spec.md §5: "multiple workers may raise it"),
// grounded on the teacher's flow package worker-pool style generalized to a
// CAS accumulator since math/rand's corpus has no direct analogue for a
// concurrent max reduction.
package saglue
