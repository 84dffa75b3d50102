package fixture

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

const minStarVertices = 2

// Star returns a Constructor building a star on n vertices: vertex 0 is the
// hub, connected to every leaf 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minStarVertices {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, n); err != nil {
			return err
		}
		for i := int64(1); i < int64(n); i++ {
			if err := g.AddEdge(0, i, -1, core.NoColor); err != nil {
				return fmt.Errorf("Star: AddEdge(0,%d): %w", i, err)
			}
		}

		return nil
	}
}
