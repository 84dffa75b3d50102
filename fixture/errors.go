package fixture

import "errors"

// ErrTooFewVertices indicates a size parameter smaller than a constructor's
// minimum (e.g. Path/Cycle/Wheel need at least a handful of vertices).
var ErrTooFewVertices = errors.New("fixture: too few vertices")

// ErrInvalidProbability indicates a probability outside [0,1] was passed to
// RandomSparse.
var ErrInvalidProbability = errors.New("fixture: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was asked to run
// without an *rand.Rand.
var ErrNeedRandSource = errors.New("fixture: rng is required")

// ErrConstructFailed indicates RandomRegular exhausted its bounded retry
// budget without finding a valid stub pairing.
var ErrConstructFailed = errors.New("fixture: construction failed after bounded retries")

// ErrColorCountMismatch indicates VertexColors/Communities was given a
// slice whose length does not match the graph's vertex count.
var ErrColorCountMismatch = errors.New("fixture: color/community slice length does not match vertex count")
