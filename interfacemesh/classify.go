package interfacemesh

import "github.com/dxacore/dxacore/tessellation"

// Classification is the per-cell output of ClassifyTetrahedra (spec.md
// §4.4): which primary cells are elastically compatible, their consecutive
// index, and the isCompletelyGood/isCompletelyBad flags.
type Classification struct {
	// Good[c] is true iff primary cell c's elastic mapping is compatible
	// (spec.md §4.2's isElasticMappingCompatible). Meaningless for ghost
	// cells.
	Good []bool

	// Index[c] is the consecutive index assigned to primary good cells
	// (spec.md §4.4), or -1 for ghost cells and bad primary cells.
	Index []int

	// CompletelyGood[c] is true iff cell c is itself good and every
	// neighboring cell across its four facets is also good.
	CompletelyGood []bool

	// CompletelyBad[c] is true iff cell c is itself bad and no
	// neighboring cell across its four facets is good.
	CompletelyBad []bool
}

// ClassifyTetrahedra labels every primary (non-ghost) cell of tess good or
// bad using em's assigned edges, and computes the isCompletelyGood /
// isCompletelyBad flags from each cell's facet neighbors.
//
// Complexity: O(cells).
func ClassifyTetrahedra(tess Tessellation, em *tessellation.ElasticMapping) *Classification {
	n := tess.CellCount()
	c := &Classification{
		Good:           make([]bool, n),
		Index:          make([]int, n),
		CompletelyGood: make([]bool, n),
		CompletelyBad:  make([]bool, n),
	}

	next := 0
	for cell := 0; cell < n; cell++ {
		if tess.IsGhost(cell) {
			c.Index[cell] = -1
			continue
		}
		if em.IsCompatible(tess.CellVertices(cell)) {
			c.Good[cell] = true
			c.Index[cell] = next
			next++
		} else {
			c.Index[cell] = -1
		}
	}

	for cell := 0; cell < n; cell++ {
		if tess.IsGhost(cell) {
			continue
		}
		allGood, sawGood := true, false
		for f := 0; f < 4; f++ {
			mirror, _, ok := tess.MirrorFacet(cell, f)
			if !ok {
				allGood = false
				continue
			}
			if c.Good[mirror] {
				sawGood = true
			} else {
				allGood = false
			}
		}
		c.CompletelyGood[cell] = c.Good[cell] && allGood
		c.CompletelyBad[cell] = !c.Good[cell] && !sawGood
	}

	return c
}
