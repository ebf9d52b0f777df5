package defectmesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/vec3"
)

// A single emitted face with no neighbor anywhere is exactly the case the
// reverse-key pass alone cannot close: every one of its three half-edges is
// a boundary edge. stitchOpposites must cap it so the result has no nil
// Opposite anywhere, matching a closed oriented 2-manifold.
func TestStitchOppositesClosesALoneTriangle(t *testing.T) {
	b := &builder{
		mesh:       &Mesh{},
		pairLookup: make(map[[2]*Vertex]*HalfEdge),
	}
	v0 := &Vertex{ID: 0, Position: vec3.Point3{X: 0, Y: 0, Z: 0}}
	v1 := &Vertex{ID: 1, Position: vec3.Point3{X: 1, Y: 0, Z: 0}}
	v2 := &Vertex{ID: 2, Position: vec3.Point3{X: 0, Y: 1, Z: 0}}
	b.mesh.vertices = []*Vertex{v0, v1, v2}
	b.nextVertex = 3
	b.emitFace(v0, v1, v2)

	b.stitchOpposites()

	for _, e := range b.mesh.HalfEdges() {
		require.NotNil(t, e.Opposite, "unpaired half-edge after stitchOpposites")
		require.Equal(t, e, e.Opposite.Opposite)
	}
}
