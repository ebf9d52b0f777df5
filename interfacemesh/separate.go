package interfacemesh

// separateSharedVertices splits any vertex visited by more than one
// manifold sheet ("fan") so each sheet owns its own vertex (spec.md §4.4).
// A fan is a maximal run of half-edges sharing an origin, connected by
// rotating e -> e.Opposite.NextFaceEdge. Vertices are visited in a fixed
// order (m.Vertices(), not map iteration); within each vertex the first
// fan collected always contains the lowest-indexed outgoing half-edge (it
// is seeded from the full remaining set before any fan is removed) and
// keeps the original vertex, so which fan is "original" versus "copy"
// no longer depends on map iteration order (spec.md §5).
func (m *Mesh) separateSharedVertices() {
	halfEdges := m.HalfEdges()
	index := make(map[*HalfEdge]int, len(halfEdges))
	for i, e := range halfEdges {
		index[e] = i
	}

	outgoing := make(map[*Vertex][]*HalfEdge)
	for _, e := range halfEdges {
		outgoing[e.Origin] = append(outgoing[e.Origin], e)
	}

	for _, v := range m.Vertices() {
		edges := outgoing[v]
		if len(edges) <= 1 {
			continue
		}
		remaining := make(map[*HalfEdge]bool, len(edges))
		for _, e := range edges {
			remaining[e] = true
		}

		first := true
		for len(remaining) > 0 {
			start := lowestIndexed(remaining, index)
			fan := collectFan(start, remaining)
			if first {
				first = false
				continue
			}
			nv := &Vertex{ID: VertexID(len(m.vertices)), AtomIndex: v.AtomIndex, Position: v.Position}
			m.vertices = append(m.vertices, nv)
			for _, e := range fan {
				e.Origin = nv
			}
		}
	}
}

// lowestIndexed returns the half-edge in set with the smallest index.
func lowestIndexed(set map[*HalfEdge]bool, index map[*HalfEdge]int) *HalfEdge {
	var best *HalfEdge
	for e := range set {
		if best == nil || index[e] < index[best] {
			best = e
		}
	}
	return best
}

// prevFaceEdge returns the half-edge preceding e in its (length-3) face
// cycle.
func prevFaceEdge(e *HalfEdge) *HalfEdge {
	return e.NextFaceEdge.NextFaceEdge
}

// collectFan gathers every half-edge in remaining reachable from start by
// rotating around their shared origin vertex, in both directions, removing
// each as it is visited.
func collectFan(start *HalfEdge, remaining map[*HalfEdge]bool) []*HalfEdge {
	fan := []*HalfEdge{start}
	delete(remaining, start)

	for cur := start; cur.Opposite != nil; {
		next := cur.Opposite.NextFaceEdge
		if next == start || !remaining[next] {
			break
		}
		fan = append(fan, next)
		delete(remaining, next)
		cur = next
	}

	for cur := start; ; {
		prev := prevFaceEdge(cur)
		if prev.Opposite == nil {
			break
		}
		candidate := prev.Opposite
		if candidate == start || !remaining[candidate] {
			break
		}
		fan = append(fan, candidate)
		delete(remaining, candidate)
		cur = candidate
	}

	return fan
}
