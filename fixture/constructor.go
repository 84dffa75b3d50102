package fixture

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

// Constructor mutates a freshly created *core.Graph. Constructors must
// validate their own parameters and return sentinel errors; they must
// never panic.
type Constructor func(g *core.Graph) error

// Build creates a new core.Graph with the given mode flags and applies every
// constructor to it in order. Any constructor error is wrapped with
// "fixture: %w" and returned immediately.
func Build(prefix string, directed, vertexColored, edgeColored bool, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(prefix, directed, vertexColored, edgeColored)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	for _, c := range cons {
		if err := c(g); err != nil {
			return nil, fmt.Errorf("fixture: %w", err)
		}
	}

	return g, nil
}

// addVertices adds n vertices 0..n-1, each with EnumIndex == Index and no
// color or community, the baseline every topology constructor starts from.
func addVertices(g *core.Graph, n int) error {
	for i := int64(0); i < int64(n); i++ {
		if err := g.AddVertex(i, i, core.NoCommunity, core.NoColor); err != nil {
			return fmt.Errorf("AddVertex(%d): %w", i, err)
		}
	}

	return nil
}
