package certificate

import "errors"

// ErrFingerprintCollision is returned by Aggregator.Add when two subgraphs
// produce the same fingerprint bytes but carry different canonical
// matrices — spec §9's open question on truncation risk, surfaced as a
// sentinel instead of silently aggregating the two subgraphs together.
var ErrFingerprintCollision = errors.New("certificate: fingerprint collision between non-isomorphic subgraphs")
