package fixture

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

const minPathVertices = 2

// Path returns a Constructor building a simple path 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathVertices {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, n); err != nil {
			return err
		}
		for i := int64(1); i < int64(n); i++ {
			if err := g.AddEdge(i-1, i, -1, core.NoColor); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", i-1, i, err)
			}
		}

		return nil
	}
}
