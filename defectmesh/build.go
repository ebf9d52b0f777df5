package defectmesh

import (
	"github.com/dxacore/dxacore/dislocation"
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/vec3"
)

// builder accumulates the mesh under construction, mirroring
// interfacemesh.builder's shape.
type builder struct {
	mesh       *Mesh
	vertexOf   map[*interfacemesh.Vertex]*Vertex
	pairLookup map[[2]*Vertex]*HalfEdge
	nextVertex VertexID
	nextFace   FaceID
}

// CreateMesh builds the closed defect surface from an already-constructed
// interface mesh and the finished dislocation network traced over it
// (spec.md §4.6).
func CreateMesh(im *interfacemesh.Mesh, net *dislocation.Network) *Mesh {
	b := &builder{
		mesh:       &Mesh{},
		vertexOf:   make(map[*interfacemesh.Vertex]*Vertex),
		pairLookup: make(map[[2]*Vertex]*HalfEdge),
	}

	for _, f := range im.Faces() {
		if b.isDropped(f, net) {
			continue
		}
		e := f.Edge
		v0, v1, v2 := b.vertex(e.Origin), b.vertex(e.NextFaceEdge.Origin), b.vertex(e.NextFaceEdge.NextFaceEdge.Origin)
		b.emitFace(v0, v1, v2)
	}

	for _, seg := range net.Segments {
		for _, node := range []*dislocation.DislocationNode{seg.Forward, seg.Backward} {
			if node == nil || !node.IsDangling() || node.Circuit == nil {
				continue
			}
			b.capDanglingCircuit(node)
		}
	}

	b.stitchOpposites()
	return b.mesh
}

// isDropped reports whether f is swept by a resolved (non-dangling)
// circuit without the primary-trace flag set — the case spec.md §4.6
// excludes from the defect surface.
func (b *builder) isDropped(f *interfacemesh.Face, net *dislocation.Network) bool {
	circuit, swept := net.SweptFaces[f]
	if !swept || circuit.Node == nil {
		return false
	}
	return !circuit.Node.IsDangling() && !f.Flag
}

func (b *builder) vertex(v *interfacemesh.Vertex) *Vertex {
	if nv, ok := b.vertexOf[v]; ok {
		return nv
	}
	nv := &Vertex{ID: b.nextVertex, Position: v.Position}
	b.nextVertex++
	b.vertexOf[v] = nv
	b.mesh.vertices = append(b.mesh.vertices, nv)
	return nv
}

func (b *builder) emitFace(tri ...*Vertex) {
	face := &Face{ID: b.nextFace}
	b.nextFace++

	edges := make([]*HalfEdge, 3)
	for i := 0; i < 3; i++ {
		e := &HalfEdge{Origin: tri[i], Face: face}
		edges[i] = e
		b.pairLookup[[2]*Vertex{tri[i], tri[(i+1)%3]}] = e
	}
	for i := 0; i < 3; i++ {
		edges[i].NextFaceEdge = edges[(i+1)%3]
	}
	face.Edge = edges[0]
	b.mesh.faces = append(b.mesh.faces, face)
}

// capDanglingCircuit closes the hole a still-open circuit leaves behind
// with a triangle fan rooted at a new vertex at the dislocation node's
// position, one triangle per edge of the circuit's snapshot MeshCap
// (spec.md §4.6).
func (b *builder) capDanglingCircuit(node *dislocation.DislocationNode) {
	capEdges := node.Circuit.MeshCap
	if len(capEdges) == 0 {
		capEdges = node.Circuit.Edges
	}
	if len(capEdges) == 0 {
		return
	}
	cap := &Vertex{ID: b.nextVertex, Position: node.LinePoint()}
	b.nextVertex++
	b.mesh.vertices = append(b.mesh.vertices, cap)

	for _, e := range capEdges {
		origin := b.meshVertex(e.Origin)
		dest := b.meshVertex(e.Dest())
		b.emitFace(cap, origin, dest)
	}
}

func (b *builder) meshVertex(v *interfacemesh.Vertex) *Vertex {
	if nv, ok := b.vertexOf[v]; ok {
		return nv
	}
	return b.vertex(v)
}

// stitchOpposites links each half-edge to the one with swapped endpoints,
// then closes any boundary still left open: dropped faces and dangling
// caps can leave a ring of half-edges with no reverse entry in
// pairLookup (e.g. two independently-capped dangling circuits sharing an
// interior edge), which a single reverse-key pass never pairs up. Capping
// every such ring with its own fan vertex, the same way capDanglingCircuit
// closes a traced circuit's hole, guarantees the result is a closed
// oriented 2-manifold (spec.md §4.6).
func (b *builder) stitchOpposites() {
	b.pairUnresolved()
	for _, loop := range b.openBoundaryLoops() {
		b.capBoundaryLoop(loop)
	}
	b.pairUnresolved()
}

// pairUnresolved links every half-edge still missing an Opposite to the
// one with swapped endpoints, if one has since been emitted.
func (b *builder) pairUnresolved() {
	for key, e := range b.pairLookup {
		if e.Opposite != nil {
			continue
		}
		reverseKey := [2]*Vertex{key[1], key[0]}
		if opp, ok := b.pairLookup[reverseKey]; ok {
			e.Opposite = opp
			opp.Opposite = e
		}
	}
}

// openBoundaryLoops walks every half-edge still missing an Opposite into
// its boundary ring, following origin(next) == dest(current) (NextFaceEdge's
// origin, not Dest(), since Dest() on an unpaired edge would dereference a
// nil Opposite).
func (b *builder) openBoundaryLoops() [][]*HalfEdge {
	var open []*HalfEdge
	for _, f := range b.mesh.faces {
		e := f.Edge
		for i := 0; i < 3; i++ {
			if e.Opposite == nil {
				open = append(open, e)
			}
			e = e.NextFaceEdge
		}
	}
	if len(open) == 0 {
		return nil
	}

	byOrigin := make(map[*Vertex]*HalfEdge, len(open))
	for _, e := range open {
		byOrigin[e.Origin] = e
	}

	var loops [][]*HalfEdge
	visited := make(map[*HalfEdge]bool, len(open))
	for _, start := range open {
		if visited[start] {
			continue
		}
		var loop []*HalfEdge
		for cur := start; cur != nil && !visited[cur]; cur = byOrigin[cur.NextFaceEdge.Origin] {
			visited[cur] = true
			loop = append(loop, cur)
		}
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// capBoundaryLoop closes one open ring with a fan rooted at a new vertex at
// the ring's centroid, one triangle per ring edge. Each triangle is wound
// (center, dest, origin) — reversed relative to the open edge it closes
// (origin, dest) — so its middle edge carries the reverse key pairUnresolved
// needs to pair it with the original open edge, instead of colliding with
// that edge's own pairLookup entry.
func (b *builder) capBoundaryLoop(loop []*HalfEdge) {
	base := loop[0].Origin.Position
	var sum vec3.Vector3
	for _, e := range loop {
		sum = sum.Add(e.Origin.Position.Sub(base))
	}
	center := &Vertex{ID: b.nextVertex, Position: base.Add(sum.Scale(1 / float64(len(loop))))}
	b.nextVertex++
	b.mesh.vertices = append(b.mesh.vertices, center)

	for _, e := range loop {
		b.emitFace(center, e.NextFaceEdge.Origin, e.Origin)
	}
}
