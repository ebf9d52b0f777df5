package defectmesh

import "github.com/dxacore/dxacore/vec3"

// VertexID identifies a defect-mesh vertex.
type VertexID int

// FaceID identifies a defect-mesh face.
type FaceID int

// Vertex is a position on the defect mesh: either copied from the
// interface mesh or a cap vertex sitting at a dislocation node's position.
type Vertex struct {
	ID       VertexID
	Position vec3.Point3
}

// Face is one triangular face, referencing one of its three half-edges.
type Face struct {
	ID   FaceID
	Edge *HalfEdge
}

// HalfEdge is one directed edge of a face, paired with its Opposite on the
// neighboring face. CreateMesh's stitchOpposites closes every boundary
// loop left open by face-dropping or circuit-capping, so Opposite is
// never nil on a finished Mesh.
type HalfEdge struct {
	Origin       *Vertex
	Face         *Face
	Opposite     *HalfEdge
	NextFaceEdge *HalfEdge
}

// Dest returns the vertex this half-edge points to.
func (e *HalfEdge) Dest() *Vertex {
	return e.Opposite.Origin
}

// Mesh is the closed half-edge manifold CreateMesh builds.
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
