package fixture

import (
	"fmt"
	"math/rand"

	"github.com/motifscan/kavosh/core"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor building an Erdos-Renyi G(n,p) graph:
// every pair i<j is connected with independent probability p.
func RandomSparse(n int, p float64, rng *rand.Rand) Constructor {
	return func(g *core.Graph) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		if rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := addVertices(g, n); err != nil {
			return err
		}
		for i := int64(0); i < int64(n); i++ {
			for j := i + 1; j < int64(n); j++ {
				if rng.Float64() >= p {
					continue
				}
				if err := g.AddEdge(i, j, -1, core.NoColor); err != nil {
					return fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
