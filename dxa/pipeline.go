package dxa

import (
	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/defectmesh"
	"github.com/dxacore/dxacore/dislocation"
	"github.com/dxacore/dxacore/interfacemesh"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/planardefect"
	"github.com/dxacore/dxacore/progress"
	"github.com/dxacore/dxacore/saglue"
	"github.com/dxacore/dxacore/simcell"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/tessellation"
)

// Run executes the full pipeline over atoms tessellated by tess within
// cell, using p to tune the circuit search and tracer, and handle to
// report progress and accept cancellation (spec.md §5; pass progress.Nop{}
// if the caller does not care).
//
// The phases run in the fixed order spec.md §2 lays out: cluster
// graph construction (saglue), elastic mapping and tetrahedron
// classification (tessellation, interfacemesh), interface mesh
// construction, dislocation tracing, and defect mesh closure. Each phase
// is checked for cancellation before it starts; a canceled run returns
// progress.ErrCanceled with no partial Results.
//
// Complexity: dominated by the dislocation tracer's circuit search; see
// the per-phase complexity notes in saglue, tessellation, interfacemesh,
// and dislocation.
func Run(atoms []structure.CNAAtom, cell simcell.SimulationCell, tess tessellation.Tessellation, p params.Parameters, handle progress.Handle) (*Results, error) {
	if handle == nil {
		handle = progress.Nop{}
	}

	if err := validateParameters(p); err != nil {
		return nil, err
	}
	if cell.Volume() == 0 {
		return nil, simcell.ErrDegenerateCell
	}
	if err := progress.CheckCanceled(handle); err != nil {
		return nil, err
	}

	g := clustergraph.NewGraph(clustergraph.WithMaxClusterDistance(p.MaxClusterDistance))
	saResult, err := saglue.BuildClusterGraph(atoms, g, handle)
	if err != nil {
		return nil, err
	}

	if err := progress.CheckCanceled(handle); err != nil {
		return nil, err
	}
	em, err := tessellation.Build(tess, atoms, cell, saResult.ClusterOf, g, p.MaxClusterDistance)
	if err != nil {
		return nil, err
	}

	if err := progress.CheckCanceled(handle); err != nil {
		return nil, err
	}
	class := interfacemesh.ClassifyTetrahedra(tess, em)
	mesh := interfacemesh.CreateMesh(tess, em, atoms, cell, class)

	if err := progress.CheckCanceled(handle); err != nil {
		return nil, err
	}
	tracer := dislocation.NewTracer(mesh, g, saResult.ClusterOf, cell, p)
	net := tracer.Run()
	if net == nil {
		invariantViolated("Tracer.Run returned a nil Network")
	}

	if err := progress.CheckCanceled(handle); err != nil {
		return nil, err
	}
	dm := defectmesh.CreateMesh(mesh, net)

	var faces []planardefect.Face
	if p.DetectPlanarDefects {
		for _, kind := range observedStructures(g) {
			faces = append(faces, planardefect.Detect(tess, em, class, kind, params.TransitionMatrixEpsilon)...)
		}
	}

	return &Results{
		DefectMesh:    dm,
		ClusterGraph:  g,
		Network:       net,
		ClusterOf:     saResult.ClusterOf,
		PlanarDefects: faces,
		Attributes:    computeAttributes(g, saResult.ClusterOf, net, cell.Volume()),
	}, nil
}

// validateParameters enforces spec.md §7's InvalidParameters conditions:
// MaxTrialCircuitSize must be at least 3 and not exceed the extended
// circuit size it and CircuitStretchability together define.
func validateParameters(p params.Parameters) error {
	if p.MaxTrialCircuitSize < 3 {
		return &InvalidParametersError{Reason: "MaxTrialCircuitSize must be >= 3"}
	}
	if p.CircuitStretchability < 0 {
		return &InvalidParametersError{Reason: "CircuitStretchability must be >= 0"}
	}
	if p.MaxTrialCircuitSize > p.MaxExtendedCircuitSize() {
		return &InvalidParametersError{Reason: "MaxTrialCircuitSize must not exceed MaxExtendedCircuitSize"}
	}
	return nil
}

// observedStructures lists every distinct non-null structure kind present
// in g, in the order their first cluster was created, so planar-defect
// detection covers every
// crystal structure actually observed rather than guessing one.
func observedStructures(g *clustergraph.Graph) []structure.Kind {
	seen := make(map[structure.Kind]bool)
	var out []structure.Kind
	for _, c := range g.Clusters() {
		if c.IsNull() || seen[c.Structure] {
			continue
		}
		seen[c.Structure] = true
		out = append(out, c.Structure)
	}
	return out
}
