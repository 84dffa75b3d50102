package canon

import "errors"

// ErrWordBudgetExceeded is returned by Canonicalize when the input's vertex
// count exceeds 64, the bit width of one adjacency row word (spec §3's
// "L*k <= 64" assertion).
var ErrWordBudgetExceeded = errors.New("canon: L*k exceeds the 64-bit word budget")

// ErrEmptyInput is returned by Canonicalize when the input has zero vertices.
var ErrEmptyInput = errors.New("canon: input has no vertices")
