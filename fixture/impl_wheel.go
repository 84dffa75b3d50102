package fixture

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

const minWheelVertices = 4

// Wheel returns a Constructor building a wheel on n vertices: vertex 0 is
// the hub, connected to every rim vertex 1..n-1, and the rim 1..n-1 forms a
// cycle.
func Wheel(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minWheelVertices {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, n); err != nil {
			return err
		}
		rim := int64(n - 1)
		for i := int64(1); i <= rim; i++ {
			j := i + 1
			if j > rim {
				j = 1
			}
			if err := g.AddEdge(i, j, -1, core.NoColor); err != nil {
				return fmt.Errorf("Wheel: AddEdge(%d,%d): %w", i, j, err)
			}
		}
		for i := int64(1); i <= rim; i++ {
			if err := g.AddEdge(0, i, -1, core.NoColor); err != nil {
				return fmt.Errorf("Wheel: AddEdge(0,%d): %w", i, err)
			}
		}

		return nil
	}
}
