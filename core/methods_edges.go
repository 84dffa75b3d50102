package core

// normalize returns the key AddEdge stores (src,dst) under: for directed
// graphs the pair is kept as given; for undirected graphs it is reordered so
// src <= dst, matching spec §3's "(dst,src) and (src,dst) map to the same
// edge object" invariant without double-storing the edge.
func (g *Graph) normalize(src, dst int64) edgeKey {
	if g.Directed || src <= dst {
		return edgeKey{src, dst}
	}

	return edgeKey{dst, src}
}

// AddEdge inserts an edge from source to destination with the given weight
// and color (NoColor when absent). It rejects self-loops (ErrSelfLoop),
// parallel edges (ErrParallelEdge), and edges whose endpoints have not been
// added yet (ErrDanglingEdge). A color outside [-1,6] is ErrInvalidEdgeColor.
// A color value not previously seen on this graph grows NEdgeTypes; AddEdge
// itself cannot exceed MaxEdgeTypes distinct colors since the range check
// already bounds color to [-1,MaxEdgeTypes-1] — a stream-declared nedge_types
// budget is instead enforced by the loader package, which reads it as an
// independent header field.
//
// Complexity: O(1).
func (g *Graph) AddEdge(source, destination int64, weight float64, color int8) error {
	if source == destination {
		return ErrSelfLoop
	}
	if color < NoColor || color > MaxEdgeTypes-1 {
		return ErrInvalidEdgeColor
	}

	src, ok := g.vertices[source]
	if !ok {
		return ErrDanglingEdge
	}
	dst, ok := g.vertices[destination]
	if !ok {
		return ErrDanglingEdge
	}

	key := g.normalize(source, destination)
	if _, exists := g.edges[key]; exists {
		return ErrParallelEdge
	}

	if color != NoColor {
		if _, seen := g.edgeTypes[color]; !seen {
			g.edgeTypes[color] = struct{}{}
			g.NEdgeTypes = len(g.edgeTypes)
		}
	}

	g.edges[key] = &Edge{Source: key.src, Destination: key.dst, Weight: weight, Color: color}

	if g.Directed {
		src.outgoing[destination] = struct{}{}
		dst.incoming[source] = struct{}{}
	} else {
		src.outgoing[destination] = struct{}{}
		src.incoming[destination] = struct{}{}
		dst.outgoing[source] = struct{}{}
		dst.incoming[source] = struct{}{}
	}

	return nil
}

// Edge returns the edge between source and destination (normalized for
// undirected graphs). A missing edge is reported as (nil, false): "no edge"
// is a query outcome, not an error, for every caller of this method.
func (g *Graph) Edge(source, destination int64) (*Edge, bool) {
	e, ok := g.edges[g.normalize(source, destination)]

	return e, ok
}

// EdgeCount returns the number of distinct edges stored in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns every edge in the graph, ordered by (Source,Destination)
// ascending for deterministic iteration.
//
// Complexity: O(E^2) worst case (insertion sort).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && lessEdge(out[j], out[j-1]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}

func lessEdge(a, b *Edge) bool {
	if a.Source != b.Source {
		return a.Source < b.Source
	}

	return a.Destination < b.Destination
}
