package certificate

// Aggregator maintains the per-root fingerprint->count mapping of spec
// §4.5. It is owned by exactly one root's enumeration and discarded once
// that root's output has been serialized.
type Aggregator struct {
	counts  map[string]uint64
	samples map[string][]uint64
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		counts:  make(map[string]uint64),
		samples: make(map[string][]uint64),
	}
}

// Add increments the count for fp's hex key, keeping the first canonical
// matrix seen under that key as a witness. A later Add under the same key
// whose matrix differs is ErrFingerprintCollision: spec §9's truncation
// risk made observable instead of silently merged.
func (a *Aggregator) Add(fp []byte, matrix []uint64) error {
	key := hexKey(fp)
	if prev, ok := a.samples[key]; ok {
		if !equalMatrix(prev, matrix) {
			return ErrFingerprintCollision
		}
	} else {
		a.samples[key] = append([]uint64(nil), matrix...)
	}
	a.counts[key]++

	return nil
}

// Total returns the number of subgraphs aggregated so far (sum of counts,
// not the number of distinct fingerprints).
func (a *Aggregator) Total() uint64 {
	var sum uint64
	for _, c := range a.counts {
		sum += c
	}

	return sum
}

// Len returns the number of distinct fingerprints aggregated so far.
func (a *Aggregator) Len() int { return len(a.counts) }

func equalMatrix(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
