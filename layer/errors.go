package layer

import "errors"

// ErrVertexMissing is returned by Encode when a subgraph vertex id is not
// present in the source graph — an invariant violation of the enumerator's
// contract, surfaced here rather than silently skipped.
var ErrVertexMissing = errors.New("layer: subgraph vertex not found in graph")
