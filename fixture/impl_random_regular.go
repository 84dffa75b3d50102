package fixture

import (
	"fmt"
	"math/rand"

	"github.com/motifscan/kavosh/core"
)

const (
	minRandomRegularVertices = 1
	maxStubMatchingAttempts  = 3
)

// RandomRegular returns a Constructor building an undirected d-regular
// simple graph via stub-matching with bounded reshuffle retries, adapted
// from the teacher's RandomRegular: pair stubs after a deterministic
// shuffle, validate the pairing against no-self-loop/no-parallel-edge
// constraints before mutating the graph, and reshuffle on failure, for at
// most maxStubMatchingAttempts shuffles in total.
func RandomRegular(n, d int, rng *rand.Rand) Constructor {
	return func(g *core.Graph) error {
		if n < minRandomRegularVertices {
			return fmt.Errorf("RandomRegular: n=%d < min=%d: %w", n, minRandomRegularVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("RandomRegular: degree must be in [0,%d), got %d: %w", n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("RandomRegular: n*d must be even (n=%d,d=%d): %w", n, d, ErrTooFewVertices)
		}
		if rng == nil {
			return fmt.Errorf("RandomRegular: %w", ErrNeedRandSource)
		}
		if err := addVertices(g, n); err != nil {
			return err
		}

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int64, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = int64(i)
				pos++
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			valid := true
			seen := make(map[[2]int64]struct{}, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int64{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if err := g.AddEdge(u, v, -1, core.NoColor); err != nil {
					return fmt.Errorf("RandomRegular: AddEdge(%d,%d): %w", u, v, err)
				}
			}

			return nil
		}

		return fmt.Errorf("RandomRegular: %w", ErrConstructFailed)
	}
}
