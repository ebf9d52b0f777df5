// Package pathfinder implements the Crystal Path Finder (spec.md §4.3): given
// two nearby atoms, it searches for a path through atoms in the good crystal
// region whose accumulated lattice vector gives the ideal separation between
// them, expressed in one cluster's frame.
//
// The package offers:
//   - ClusterVector: a Cartesian triple tagged with the cluster frame it is
//     expressed in (spec.md §3); the zero vector may be frameless (nil
//     Cluster).
//   - Find: the bounded breadth-first search itself, consuming the per-atom
//     ordered neighbor lists structure.CNAAtom carries and the cluster
//     assignments built by package saglue, and using
//     clustergraph.Graph.DetermineTransition whenever a step crosses a
//     cluster-frame boundary.
//
// Grounded on the teacher's graph/bfs.go queue-of-frontier-nodes shape,
// generalized so each frontier node also carries an accumulated
// ClusterVector and the path is abandoned (not merely skipped) once the
// configured maxPathLength is reached.
package pathfinder
