package core

// AddVertex inserts a vertex with the given index, enumeration index,
// community, and color. community and color should be NoCommunity/NoColor
// when absent. Returns ErrDuplicateVertex if index is already present.
//
// Complexity: O(1).
func (g *Graph) AddVertex(index, enumIndex, community int64, color int16) error {
	if _, exists := g.vertices[index]; exists {
		return ErrDuplicateVertex
	}

	g.vertices[index] = &Vertex{
		Index:     index,
		EnumIndex: enumIndex,
		Community: community,
		Color:     color,
		incoming:  make(map[int64]struct{}),
		outgoing:  make(map[int64]struct{}),
	}

	return nil
}

// Vertex returns the vertex with the given index, or ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Vertex(index int64) (*Vertex, error) {
	v, ok := g.vertices[index]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// HasVertex reports whether index has been added to the graph.
func (g *Graph) HasVertex(index int64) bool {
	_, ok := g.vertices[index]

	return ok
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertices returns every vertex in the graph, ordered by ascending Index so
// that callers get deterministic iteration (golden tests, fingerprints).
//
// Complexity: O(V^2) worst case (insertion sort).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sortVertices(out)

	return out
}

func sortVertices(vs []*Vertex) {
	// Insertion sort is fine here: Vertices() is a diagnostics/iteration
	// helper, never called in the enumerator's hot recursion.
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j-1].Index > vs[j].Index; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
}

// Neighbors returns the ids of every vertex adjacent to index in either
// direction (incoming ∪ outgoing), or ErrVertexNotFound.
//
// Complexity: O(degree).
func (g *Graph) Neighbors(index int64) ([]int64, error) {
	v, err := g.Vertex(index)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(v.incoming)+len(v.outgoing))
	out := make([]int64, 0, len(v.incoming)+len(v.outgoing))
	for w := range v.outgoing {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	for w := range v.incoming {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}

	return out, nil
}

// OutNeighbors returns the ids reachable from index via an outgoing edge.
//
// Complexity: O(out-degree).
func (g *Graph) OutNeighbors(index int64) ([]int64, error) {
	v, err := g.Vertex(index)
	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, len(v.outgoing))
	for w := range v.outgoing {
		out = append(out, w)
	}

	return out, nil
}

// HasDirectedEdgeFromTo reports whether a directed edge index->to exists in
// the underlying storage, independent of Graph.Directed (useful for the
// layer encoder, which needs the raw stored orientation).
func (g *Graph) HasDirectedEdgeFromTo(from, to int64) bool {
	v, ok := g.vertices[from]
	if !ok {
		return false
	}
	_, ok = v.outgoing[to]

	return ok
}
