package dxa

import (
	"fmt"
	"math"

	"github.com/dxacore/dxacore/clustergraph"
	"github.com/dxacore/dxacore/defectmesh"
	"github.com/dxacore/dxacore/dislocation"
	"github.com/dxacore/dxacore/planardefect"
	"github.com/dxacore/dxacore/structure"
	"github.com/dxacore/dxacore/vec3"
)

// Attributes collects the scalar results spec.md §6 names ("scalar
// attributes: total line length, per-structure counts, per-Burgers-family
// lengths, cell volume"). The key scheme below is grounded on
// original_source's DislocationAnalysisModifier.cpp, which populates a flat
// attribute dictionary with exactly these dotted keys.
type Attributes struct {
	// TotalLineLength is "DislocationAnalysis.total_line_length": the sum
	// of every segment's polyline length.
	TotalLineLength float64

	// StructureCounts is "DislocationAnalysis.counts.<Structure>": the
	// number of atoms assigned a cluster of each structure kind.
	StructureCounts map[structure.Kind]int

	// BurgersFamilyLength is "DislocationAnalysis.length.<family>": the
	// summed line length of every segment whose Burgers vector falls in
	// family, keyed by formatBurgersFamily's label ("other" for any
	// segment whose vector does not cleanly resolve to a low-order
	// fraction of a lattice direction).
	BurgersFamilyLength map[string]float64

	// CellVolume is "DislocationAnalysis.cell_volume".
	CellVolume float64
}

// Results is the finished output of Run: the closed defect mesh, the
// cluster graph, the dislocation network, per-atom cluster assignment, and
// the scalar Attributes (spec.md §6).
type Results struct {
	DefectMesh    *defectmesh.Mesh
	ClusterGraph  *clustergraph.Graph
	Network       *dislocation.Network
	ClusterOf     []clustergraph.ClusterID
	PlanarDefects []planardefect.Face
	Attributes    Attributes
}

// segmentLength sums the Euclidean length of a dislocation segment's
// polyline.
func segmentLength(seg *dislocation.DislocationSegment) float64 {
	var total float64
	for i := 1; i < len(seg.Line); i++ {
		total += seg.Line[i].Sub(seg.Line[i-1]).Length()
	}
	return total
}

// burgersFamilyDenominators are the low-order fractions DXA's cubic and
// hexagonal structures commonly express Burgers vectors in (1/2<110> for
// FCC, 1/3<111> partials, 1/6<112> Shockley partials, and whole vectors).
var burgersFamilyDenominators = []int{1, 2, 3, 6}

// formatBurgersFamily labels b the way original_source's
// formatBurgersVector does: a fractional-Miller-index string such as
// "1/2<110>" when b's components resolve cleanly to a low-order fraction
// of small integers within 10*tol, or "other" otherwise (b shorter than tol
// is also "other"). This is an
// approximation (the original formats signed, non-normalized indices with
// a display-library helper this module does not have); it keeps the
// attribute's documentation purpose — grouping segments by recognizable
// family — without depending on that display code.
func formatBurgersFamily(b vec3.Vector3, tol float64) string {
	if b.Length() < tol {
		return "other"
	}
	for _, d := range burgersFamilyDenominators {
		scaled := b.Scale(float64(d))
		h, k, l := math.Round(scaled.X), math.Round(scaled.Y), math.Round(scaled.Z)
		if math.Abs(scaled.X-h) < tol*10 && math.Abs(scaled.Y-k) < tol*10 && math.Abs(scaled.Z-l) < tol*10 {
			h, k, l = math.Abs(h), math.Abs(k), math.Abs(l)
			if d == 1 {
				return fmt.Sprintf("<%d%d%d>", int(h), int(k), int(l))
			}
			return fmt.Sprintf("1/%d<%d%d%d>", d, int(h), int(k), int(l))
		}
	}
	return "other"
}

// computeAttributes derives Results.Attributes from the finished cluster
// graph, atom-to-cluster assignment, dislocation network, and cell volume.
func computeAttributes(g *clustergraph.Graph, clusterOf []clustergraph.ClusterID, net *dislocation.Network, cellVolume float64) Attributes {
	attrs := Attributes{
		StructureCounts:     make(map[structure.Kind]int),
		BurgersFamilyLength: make(map[string]float64),
		CellVolume:          math.Abs(cellVolume),
	}

	for _, id := range clusterOf {
		c := g.FindCluster(id)
		if c == nil {
			continue
		}
		attrs.StructureCounts[c.Structure]++
	}

	for _, seg := range net.Segments {
		length := segmentLength(seg)
		attrs.TotalLineLength += length
		attrs.BurgersFamilyLength[formatBurgersFamily(seg.Burgers, burgersFormatTolerance)] += length
	}

	return attrs
}

// burgersFormatTolerance is the tol formatBurgersFamily receives: its
// minimum Burgers vector length, with ten times it as the absolute
// tolerance when snapping a scaled component to an integer Miller index.
const burgersFormatTolerance = 1e-3
