package fixture

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

const minCompleteVertices = 1

// Complete returns a Constructor building the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteVertices {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, n); err != nil {
			return err
		}
		for i := int64(0); i < int64(n); i++ {
			for j := i + 1; j < int64(n); j++ {
				if err := g.AddEdge(i, j, -1, core.NoColor); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
