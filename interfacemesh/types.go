package interfacemesh

import (
	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/tessellation"
	"github.com/dxacore/dxacore/vec3"
)

// Tessellation is the view of the tetrahedralization Interface Mesh needs
// beyond Elastic Mapping's: which cell lies across a given facet, already
// resolved to a primary cell on the real side of any periodic ghost image
// (spec.md §4.4 delegates that canonicalization to the tessellation
// collaborator itself, since Delaunay tessellation with ghost-cell support
// is out of scope, spec.md §1).
type Tessellation interface {
	tessellation.Tessellation

	// MirrorFacet returns the cell and local facet index lying across
	// cell's local facet f (facet f is opposite local vertex f, the
	// standard tetrahedron numbering). ok is false at an unpaired
	// (open) boundary.
	MirrorFacet(cell, f int) (mirrorCell, mirrorFacet int, ok bool)
}

// localFaceVerts[f] lists the three local vertex indices of facet f
// (opposite local vertex f), in the alternating winding order that keeps
// all four faces of one tetrahedron consistently oriented: every shared
// edge runs forward on one face and backward on its neighbor.
var localFaceVerts = [4][3]int{
	{1, 2, 3},
	{3, 2, 0},
	{0, 1, 3},
	{2, 1, 0},
}

// VertexID identifies a mesh vertex.
type VertexID int

// FaceID identifies a mesh face.
type FaceID int

// Vertex is a position on the interface mesh. AtomIndex ties it back to the
// originating atom; after shared-vertex separation several Vertex values
// may share the same AtomIndex, one per manifold sheet.
type Vertex struct {
	ID        VertexID
	AtomIndex int
	Position  vec3.Point3
}

// Face is one triangular face of the manifold, referencing one of its
// three half-edges (the other two follow via NextFaceEdge).
type Face struct {
	ID FaceID
	// Edge anchors the face's 3-cycle of half-edges.
	Edge *HalfEdge
	// Flag records DT's primary-trace marker (spec.md §4.5.5 rule 2: "In
	// primary mode also set face.flag = 1").
	Flag bool
}

// HalfEdge is one directed edge of a face, paired with its Opposite on the
// neighboring face.
type HalfEdge struct {
	Origin *Vertex
	Face   *Face

	Opposite     *HalfEdge
	NextFaceEdge *HalfEdge

	// PhysicalVector is the (minimum-image) displacement from Origin to
	// Dest() in simulation coordinates.
	PhysicalVector vec3.Vector3

	// ClusterVector is the ideal lattice vector from Origin to Dest(), in
	// Origin's cluster frame.
	ClusterVector vec3.Vector3

	// ClusterTransition maps Origin's cluster frame to Dest()'s.
	ClusterTransition *clustergraph.ClusterTransition
}

// Dest returns the vertex this half-edge points to.
func (e *HalfEdge) Dest() *Vertex {
	return e.Opposite.Origin
}

// Mesh is the half-edge manifold built by CreateMesh.
type Mesh struct {
	vertices []*Vertex
	faces    []*Face
}

// Vertices returns every mesh vertex.
func (m *Mesh) Vertices() []*Vertex {
	out := make([]*Vertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Faces returns every mesh face.
func (m *Mesh) Faces() []*Face {
	out := make([]*Face, len(m.faces))
	copy(out, m.faces)
	return out
}

// Outgoing returns every half-edge originating at v.
//
// Complexity: O(half-edges).
func (m *Mesh) Outgoing(v *Vertex) []*HalfEdge {
	var out []*HalfEdge
	for _, e := range m.HalfEdges() {
		if e.Origin == v {
			out = append(out, e)
		}
	}
	return out
}

// HalfEdges returns every half-edge of every face.
func (m *Mesh) HalfEdges() []*HalfEdge {
	var out []*HalfEdge
	for _, f := range m.faces {
		e := f.Edge
		for i := 0; i < 3; i++ {
			out = append(out, e)
			e = e.NextFaceEdge
		}
	}
	return out
}
