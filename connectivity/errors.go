package connectivity

import "errors"

// ErrEmptySubset indicates Reachable or IsConnected was called with an
// empty vertex subset.
var ErrEmptySubset = errors.New("connectivity: vertex subset is empty")

// ErrRootNotInSubset indicates the requested root is not a member of the
// subset it is supposed to be explored within.
var ErrRootNotInSubset = errors.New("connectivity: root is not a member of the subset")
