package fixture

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

const minCycleVertices = 3

// Cycle returns a Constructor building a simple cycle 0-1-...-(n-1)-0.
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleVertices {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, n); err != nil {
			return err
		}
		for i := int64(0); i < int64(n); i++ {
			j := (i + 1) % int64(n)
			if err := g.AddEdge(i, j, -1, core.NoColor); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, j, err)
			}
		}

		return nil
	}
}
