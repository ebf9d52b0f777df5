package params

import "github.com/dxacore/dxacore/structure"

// Numeric tolerances used throughout the pipeline. These are the three
// epsilons spec.md §6 names explicitly; every compatibility/closure test in
// clustergraph, tessellation, interfacemesh, and dislocation is expressed
// against one of them.
const (
	// LatticeVectorEpsilon bounds how far a Burgers closure or ideal-vector
	// mismatch may be from zero/identity before it is treated as a real
	// structural defect rather than numerical noise.
	LatticeVectorEpsilon = 1e-4

	// AtomVectorEpsilon bounds atomic-position comparisons (distinct from
	// lattice-vector comparisons, which are expressed in cluster-local
	// coordinates rather than simulation coordinates).
	AtomVectorEpsilon = 1e-4

	// TransitionMatrixEpsilon bounds per-element cluster-transition matrix
	// comparisons (self-transition detection, Frank-rotation identity test).
	TransitionMatrixEpsilon = 1e-4

	// DefaultMaxClusterDistance is the bounded search depth used by
	// clustergraph.Graph.DetermineTransition. spec.md documents the
	// reference implementation as a hardcoded depth-2 unroll; this module
	// generalizes to a bounded BFS (see clustergraph) but keeps the same
	// default depth so cached results match spec.md's worked examples.
	DefaultMaxClusterDistance = 2

	// DefaultMaxTrialCircuitSize is maxTrialCircuitSize's spec default.
	DefaultMaxTrialCircuitSize = 14

	// DefaultCircuitStretchability is circuitStretchability's spec default.
	DefaultCircuitStretchability = 9

	// DefaultRandomSeed seeds traceSegment's random scan start
	// deterministically, mirroring the original engine's `_rng(1)`.
	DefaultRandomSeed = 1
)

// Parameters collects every tunable input to the DXA pipeline besides the
// atoms, simulation cell, and tessellation themselves. A zero Parameters is
// not valid; always construct via New.
type Parameters struct {
	// MaxTrialCircuitSize is maxTrialCircuitSize: the Burgers-circuit size
	// used during primary-segment search. Must be >= 3.
	MaxTrialCircuitSize int

	// CircuitStretchability is circuitStretchability: how much further a
	// circuit may be extended beyond MaxTrialCircuitSize while tracing.
	// Must be >= 0.
	CircuitStretchability int

	// OnlyPerfectDislocations, when true, drops any finalized segment whose
	// Burgers vector does not belong to its home structure's perfect family
	// (see package latticefamily).
	OnlyPerfectDislocations bool

	// DetectPlanarDefects enables the optional planardefect pass recovered
	// from original_source (off by default, matching spec.md's silence).
	DetectPlanarDefects bool

	// PreferredCrystalOrientations restricts finishDislocationSegments's
	// rotate-to-home-structure step to these structures, in priority order.
	// A nil slice means "any structure observed in the cluster graph".
	PreferredCrystalOrientations []structure.Kind

	// RandomSeed seeds the deterministic generator traceSegment uses to
	// choose its starting edge.
	RandomSeed int64

	// MaxClusterDistance bounds clustergraph.Graph.DetermineTransition's
	// search depth.
	MaxClusterDistance int
}

// MaxExtendedCircuitSize returns maxExtendedBurgersCircuitSize =
// MaxTrialCircuitSize + CircuitStretchability, the upper bound
// traceDislocationSegments iterates circuitLength up to.
func (p Parameters) MaxExtendedCircuitSize() int {
	return p.MaxTrialCircuitSize + p.CircuitStretchability
}

// Option mutates a Parameters value being built by New. Option constructors
// never panic, matching the teacher's builder.BuilderOption contract.
// WithMaxClusterDistance ignores values below 1; the other constructors
// store the value as given, and dxa.Run rejects invalid combinations.
type Option func(*Parameters)

// New resolves a Parameters from defaults plus the given options, applied in
// order (later options win).
//
// Complexity: O(len(opts)).
func New(opts ...Option) Parameters {
	p := Parameters{
		MaxTrialCircuitSize:   DefaultMaxTrialCircuitSize,
		CircuitStretchability: DefaultCircuitStretchability,
		RandomSeed:            DefaultRandomSeed,
		MaxClusterDistance:    DefaultMaxClusterDistance,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithMaxTrialCircuitSize sets maxTrialCircuitSize. Values below 3 are
// rejected by dxa.Run's parameter validation, not here — Option
// constructors never panic or silently clamp a value the caller explicitly
// chose.
func WithMaxTrialCircuitSize(n int) Option {
	return func(p *Parameters) { p.MaxTrialCircuitSize = n }
}

// WithCircuitStretchability sets circuitStretchability.
func WithCircuitStretchability(n int) Option {
	return func(p *Parameters) { p.CircuitStretchability = n }
}

// WithOnlyPerfectDislocations toggles the perfect-dislocation post-filter.
func WithOnlyPerfectDislocations(v bool) Option {
	return func(p *Parameters) { p.OnlyPerfectDislocations = v }
}

// WithDetectPlanarDefects toggles the optional planar-defect pass.
func WithDetectPlanarDefects(v bool) Option {
	return func(p *Parameters) { p.DetectPlanarDefects = v }
}

// WithPreferredCrystalOrientations sets the structure priority list used by
// finishDislocationSegments.
func WithPreferredCrystalOrientations(kinds ...structure.Kind) Option {
	return func(p *Parameters) { p.PreferredCrystalOrientations = kinds }
}

// WithRandomSeed overrides the deterministic RNG seed.
func WithRandomSeed(seed int64) Option {
	return func(p *Parameters) { p.RandomSeed = seed }
}

// WithMaxClusterDistance overrides the cluster-graph bounded search depth.
func WithMaxClusterDistance(n int) Option {
	return func(p *Parameters) {
		if n >= 1 {
			p.MaxClusterDistance = n
		}
	}
}
