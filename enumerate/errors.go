package enumerate

import "errors"

// ErrRootNotFound is returned by Enumerate when the requested root index is
// not a vertex of the graph.
var ErrRootNotFound = errors.New("enumerate: root vertex not found")

// ErrInvalidSize is returned by Enumerate when k < 1.
var ErrInvalidSize = errors.New("enumerate: k must be >= 1")
