package dislocation

import (
	"math/rand"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/simcell"
)

// Tracer owns the mutable search state findPrimarySegments, traceSegment,
// and joinSegments share across one run: which half-edges and faces have
// been claimed, the in-progress segments, and the dangling nodes still
// awaiting resolution.
//
// A Tracer is single-use: construct one with NewTracer, drive it with
// Run, and read Segments() once.
type Tracer struct {
	mesh      *interfacemesh.Mesh
	graph     *clustergraph.Graph
	clusterOf []clustergraph.ClusterID
	cell      simcell.SimulationCell
	params    params.Parameters
	rng       *rand.Rand

	edgeCircuit map[*interfacemesh.HalfEdge]*BurgersCircuit
	faceSwept   map[*interfacemesh.Face]*BurgersCircuit

	dangling      []*DislocationNode
	segments      []*DislocationSegment
	nextSegmentID SegmentID
}

// NewTracer prepares a Tracer over mesh, with clusterOf mapping each atom
// index (as carried by interfacemesh.Vertex.AtomIndex) to its originating
// cluster.
func NewTracer(mesh *interfacemesh.Mesh, graph *clustergraph.Graph, clusterOf []clustergraph.ClusterID, cell simcell.SimulationCell, p params.Parameters) *Tracer {
	return &Tracer{
		mesh:        mesh,
		graph:       graph,
		clusterOf:   clusterOf,
		cell:        cell,
		params:      p,
		rng:         rand.New(rand.NewSource(p.RandomSeed)),
		edgeCircuit: make(map[*interfacemesh.HalfEdge]*BurgersCircuit),
		faceSwept:   make(map[*interfacemesh.Face]*BurgersCircuit),
	}
}

// Segments returns every segment traced so far. Before Run finishes this
// includes ones absorbed by a merge (check ReplacedWith); once Run has
// finished, only the live segments remain.
func (tr *Tracer) Segments() []*DislocationSegment {
	out := make([]*DislocationSegment, len(tr.segments))
	copy(out, tr.segments)
	return out
}

func (tr *Tracer) homeCluster(v *interfacemesh.Vertex) *clustergraph.Cluster {
	if v.AtomIndex < 0 || v.AtomIndex >= len(tr.clusterOf) {
		return tr.graph.FindCluster(clustergraph.NullClusterID)
	}
	return tr.graph.FindCluster(tr.clusterOf[v.AtomIndex])
}

func (tr *Tracer) newSegmentID() SegmentID {
	id := tr.nextSegmentID
	tr.nextSegmentID++
	return id
}
