package core

import "errors"

// Sentinel errors for graph construction and query. Callers match them with
// errors.Is; none of them are recovered inside this package.
var (
	// ErrDuplicateVertex is returned when AddVertex is called with an index
	// that already exists in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex index")

	// ErrVertexNotFound is returned when an operation references a vertex
	// index that has not been added to the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop is returned by AddEdge when source == destination; this
	// module does not support self-loops.
	ErrSelfLoop = errors.New("core: self-loops are not supported")

	// ErrParallelEdge is returned by AddEdge when an edge already exists
	// between the given (source, destination) pair (normalized for
	// undirected graphs); this module does not support parallel edges.
	ErrParallelEdge = errors.New("core: parallel edges are not supported")

	// ErrDanglingEdge is returned by AddEdge when either endpoint has not
	// been added to the graph yet.
	ErrDanglingEdge = errors.New("core: edge references an unknown vertex")

	// ErrPrefixTooLong is returned by NewGraph when prefix exceeds the
	// 127-byte bound inherited from the on-disk format's 128-byte,
	// null-terminated field.
	ErrPrefixTooLong = errors.New("core: prefix exceeds 127 bytes")

	// ErrInvalidEdgeColor is returned by AddEdge when color is outside
	// [-1, 6] (-1 meaning "absent"). The upper bound of 6 is fixed by
	// MaxEdgeTypes, so a graph can never observe more than 7 distinct edge
	// colors through AddEdge alone; the loader enforces the equivalent
	// bound on the nedge_types count it reads from a file header, since
	// that count is not otherwise implied by the edges decoded so far.
	ErrInvalidEdgeColor = errors.New("core: edge color out of range")
)
