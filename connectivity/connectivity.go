package connectivity

import (
	"fmt"

	"github.com/motifscan/kavosh/core"
)

// Reachable runs breadth-first search from root over g, visiting only
// vertices present in subset, and returns the set of subset members
// reached from root. The walk treats every edge as undirected, matching
// the "at least one parent, either direction" reachability semantics
// used to validate enumerated motifs.
func Reachable(g *core.Graph, root int64, subset []int64) (map[int64]struct{}, error) {
	if len(subset) == 0 {
		return nil, ErrEmptySubset
	}

	members := make(map[int64]struct{}, len(subset))
	for _, v := range subset {
		members[v] = struct{}{}
	}
	if _, ok := members[root]; !ok {
		return nil, ErrRootNotInSubset
	}

	visited := make(map[int64]struct{}, len(subset))
	visited[root] = struct{}{}
	queue := []int64{root}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, fmt.Errorf("connectivity: Neighbors(%d): %w", cur, err)
		}
		for _, nbr := range neighbors {
			if _, inSubset := members[nbr]; !inSubset {
				continue
			}
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}

	return visited, nil
}

// IsConnected reports whether subset induces a connected subgraph of g:
// every member is reachable from subset[0] using only edges between
// members of subset.
func IsConnected(g *core.Graph, subset []int64) (bool, error) {
	if len(subset) == 0 {
		return false, ErrEmptySubset
	}

	visited, err := Reachable(g, subset[0], subset)
	if err != nil {
		return false, err
	}

	return len(visited) == len(subset), nil
}
