package fixture

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

const minBipartiteSide = 1

// Bipartite returns a Constructor building the complete bipartite graph
// K_{m,n}: left side 0..m-1, right side m..m+n-1, every cross edge present.
func Bipartite(m, n int) Constructor {
	return func(g *core.Graph) error {
		if m < minBipartiteSide || n < minBipartiteSide {
			return fmt.Errorf("Bipartite: m=%d,n=%d below min=%d: %w", m, n, minBipartiteSide, ErrTooFewVertices)
		}
		if err := addVertices(g, m+n); err != nil {
			return err
		}
		for i := int64(0); i < int64(m); i++ {
			for j := int64(m); j < int64(m+n); j++ {
				if err := g.AddEdge(i, j, -1, core.NoColor); err != nil {
					return fmt.Errorf("Bipartite: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
