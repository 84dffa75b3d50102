package fixture

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

// VertexColors returns a Constructor assigning colors[i] to vertex i. It
// must run after a topology constructor has added exactly len(colors)
// vertices.
func VertexColors(colors []int16) Constructor {
	return func(g *core.Graph) error {
		if g.VertexCount() != len(colors) {
			return fmt.Errorf("VertexColors: %d vertices, %d colors: %w", g.VertexCount(), len(colors), ErrColorCountMismatch)
		}
		for i, c := range colors {
			v, err := g.Vertex(int64(i))
			if err != nil {
				return fmt.Errorf("VertexColors: %w", err)
			}
			v.Color = c
		}

		return nil
	}
}

// Communities returns a Constructor assigning communities[i] to vertex i.
// It must run after a topology constructor has added exactly
// len(communities) vertices.
func Communities(communities []int64) Constructor {
	return func(g *core.Graph) error {
		if g.VertexCount() != len(communities) {
			return fmt.Errorf("Communities: %d vertices, %d communities: %w", g.VertexCount(), len(communities), ErrColorCountMismatch)
		}
		for i, c := range communities {
			v, err := g.Vertex(int64(i))
			if err != nil {
				return fmt.Errorf("Communities: %w", err)
			}
			v.Community = c
		}

		return nil
	}
}
