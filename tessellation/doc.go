// Package tessellation implements Elastic Mapping (spec.md §4.2): it walks
// the atom tetrahedralization (a collaborator we consume, not construct —
// Delaunay tessellation with ghost-cell support is explicitly out of scope,
// spec.md §1) and gives every tetrahedron edge an ideal lattice vector and
// a cluster transition, so Interface Mesh (package interfacemesh) can later
// test each tetrahedron for elastic compatibility.
//
// The Tessellation interface is deliberately minimal — cell count, the four
// atom indices per cell, and a ghost flag — because Elastic Mapping never
// needs the facet-adjacency queries that Interface Mesh's half-edge stitch
// requires; that richer interface lives in package interfacemesh and
// embeds this one.
//
// TessellationEdge pairs mirror clustergraph.ClusterTransition's shape:
// every edge is created together with its Reverse, and both are spliced
// into their endpoints' leaving/arriving singly-linked lists, the same
// intrusive-list idiom grounded on clustergraph (spec.md §3's "links into
// per-vertex leaving and arriving lists").
package tessellation
