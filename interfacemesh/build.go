package interfacemesh

import (
	"github.com/dxacore/dxacore/simcell"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/tessellation"
)

// builder accumulates the mesh under construction.
type builder struct {
	mesh       *Mesh
	vertexOf   map[int]*Vertex
	pairLookup map[[2]int]*HalfEdge
	nextVertex VertexID
	nextFace   FaceID
}

// CreateMesh builds the half-edge manifold separating good from bad
// tetrahedra (spec.md §4.4 createMesh): one face per primary-good cell
// facet whose mirror cell is bad (or an open boundary), three half-edges
// per face carrying the elastic-mapping data for that edge, stitched to
// their opposites, followed by shared-vertex separation.
func CreateMesh(tess Tessellation, em *tessellation.ElasticMapping, atoms []structure.CNAAtom, cell simcell.SimulationCell, class *Classification) *Mesh {
	b := &builder{
		mesh:       &Mesh{},
		vertexOf:   make(map[int]*Vertex),
		pairLookup: make(map[[2]int]*HalfEdge),
	}

	for c := 0; c < tess.CellCount(); c++ {
		if tess.IsGhost(c) || !class.Good[c] {
			continue
		}
		verts := tess.CellVertices(c)
		for f := 0; f < 4; f++ {
			mirror, _, ok := tess.MirrorFacet(c, f)
			if ok && class.Good[mirror] {
				continue
			}
			tri := localFaceVerts[f]
			b.emitFace(verts[tri[0]], verts[tri[1]], verts[tri[2]], atoms, em, cell)
		}
	}

	b.stitchOpposites()
	b.mesh.separateSharedVertices()
	return b.mesh
}

func (b *builder) vertex(atomIndex int, atoms []structure.CNAAtom) *Vertex {
	if v, ok := b.vertexOf[atomIndex]; ok {
		return v
	}
	v := &Vertex{ID: b.nextVertex, AtomIndex: atomIndex, Position: atoms[atomIndex].Position}
	b.nextVertex++
	b.vertexOf[atomIndex] = v
	b.mesh.vertices = append(b.mesh.vertices, v)
	return v
}

// emitFace creates one face over atom indices (a,bIdx,cIdx) in winding
// order, with three half-edges carrying physical/cluster vectors sourced
// from em's assigned edges.
func (b *builder) emitFace(a, bIdx, cIdx int, atoms []structure.CNAAtom, em *tessellation.ElasticMapping, cell simcell.SimulationCell) {
	face := &Face{ID: b.nextFace}
	b.nextFace++

	tri := [3]int{a, bIdx, cIdx}
	edges := make([]*HalfEdge, 3)
	for i := 0; i < 3; i++ {
		origin := tri[i]
		dest := tri[(i+1)%3]
		e := &HalfEdge{
			Origin:         b.vertex(origin, atoms),
			Face:           face,
			PhysicalVector: cell.WrapVector(atoms[dest].Position.Sub(atoms[origin].Position)),
		}
		if edge := em.FindEdge(origin, dest); edge != nil && edge.Assigned {
			e.ClusterVector = edge.B
			e.ClusterTransition = edge.Transition
		}
		edges[i] = e
		b.pairLookup[[2]int{origin, dest}] = e
	}
	for i := 0; i < 3; i++ {
		edges[i].NextFaceEdge = edges[(i+1)%3]
	}
	face.Edge = edges[0]
	b.mesh.faces = append(b.mesh.faces, face)
}

// stitchOpposites links each half-edge to the one with swapped endpoints
// (spec.md §4.4's "classical half-edge stitch").
func (b *builder) stitchOpposites() {
	for key, e := range b.pairLookup {
		if e.Opposite != nil {
			continue
		}
		reverseKey := [2]int{key[1], key[0]}
		if opp, ok := b.pairLookup[reverseKey]; ok {
			e.Opposite = opp
			opp.Opposite = e
		}
	}
}
