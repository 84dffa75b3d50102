package enumerate

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/motifscan/kavosh/core"
	"github.com/motifscan/kavosh/motifcfg"
)

// engine bundles the per-call recursion state: the graph (read-only), the
// fixed root and its enumeration index, the visited discipline, and the
// current stack of depth-indexed layers. One engine is owned by exactly one
// call to Enumerate, mirroring the teacher's bbEngine pattern of an
// explicit struct over closures that capture mutable state.
type engine struct {
	g        *core.Graph
	cfg      motifcfg.Config
	root     int64
	rootEnum int64
	visited  map[int64]struct{}
	layers   [][]int64
	visit    Visitor
}

// Enumerate produces every connected induced k-vertex subgraph of g rooted
// at root, per spec §4.2's depth-indexed neighbor-expansion recursion. Each
// subgraph is reported to visit exactly once, in the recursion's fixed
// include/exclude order.
func Enumerate(g *core.Graph, k int, root int64, cfg motifcfg.Config, visit Visitor) error {
	if k < 1 {
		return ErrInvalidSize
	}
	rv, err := g.Vertex(root)
	if err != nil {
		return ErrRootNotFound
	}

	e := &engine{
		g:        g,
		cfg:      cfg,
		root:     root,
		rootEnum: rv.EnumIndex,
		visited:  map[int64]struct{}{root: {}},
		layers:   make([][]int64, 1, k),
		visit:    visit,
	}
	e.layers[0] = []int64{root}

	return e.recurse(1, k-1)
}

// Collect is the slice-returning convenience wrapper over Enumerate, used by
// tests and by callers that would rather hold the full result set in memory
// than stream it.
func Collect(g *core.Graph, k int, root int64, cfg motifcfg.Config) ([]*Subgraph, error) {
	var out []*Subgraph
	err := Enumerate(g, k, root, cfg, func(sub *Subgraph) error {
		out = append(out, sub)

		return nil
	})

	return out, err
}

// recurse implements spec §4.2 steps 1-4. i is the current depth (the index
// about to be filled), rem is the remaining vertex budget.
func (e *engine) recurse(i, rem int) error {
	if rem == 0 {
		return e.emit()
	}

	valid := e.validSet(e.layers[i-1])
	values := valid.Values()
	items := make([]int64, len(values))
	for idx, v := range values {
		items[idx] = v.(int64)
		e.visited[items[idx]] = struct{}{}
	}

	maxKi := valid.Size()
	if rem < maxKi {
		maxKi = rem
	}

	for ki := 1; ki <= maxKi; ki++ {
		if err := combinations(items, ki, func(c []int64) error {
			e.layers = append(e.layers, c)
			err := e.recurse(i+1, rem-ki)
			e.layers = e.layers[:len(e.layers)-1]

			return err
		}); err != nil {
			for _, w := range valid.Values() {
				delete(e.visited, w.(int64))
			}

			return err
		}
	}

	for _, w := range valid.Values() {
		delete(e.visited, w.(int64))
	}

	return nil
}

// validSet computes valid(S[i-1]) per spec §4.2 step 2: neighbors of the
// previous layer, not yet visited, with enum_index >= the root's, and, in
// community-based mode, reachable through at least one same-community
// parent edge (not tightened to "all ancestors same-community" — spec §9's
// open question).
func (e *engine) validSet(prevLayer []int64) *treeset.Set {
	communityOK := make(map[int64]bool)

	for _, v := range prevLayer {
		pv, _ := e.g.Vertex(v)
		neighbors, _ := e.g.Neighbors(v)
		for _, w := range neighbors {
			if _, seen := e.visited[w]; seen {
				continue
			}
			wv, _ := e.g.Vertex(w)
			if wv.EnumIndex < e.rootEnum {
				continue
			}

			if !e.cfg.CommunityBased {
				communityOK[w] = true
				continue
			}
			ok := pv.HasCommunity() && wv.HasCommunity() && pv.Community == wv.Community
			if ok {
				communityOK[w] = true
			} else if _, exists := communityOK[w]; !exists {
				communityOK[w] = false
			}
		}
	}

	valid := treeset.NewWith(utils.Int64Comparator)
	for w, ok := range communityOK {
		if ok {
			valid.Add(w)
		}
	}

	return valid
}

// emit builds the final vertex set as the union of every layer and reports
// it to the visitor, in ascending vertex-id order.
func (e *engine) emit() error {
	total := 0
	for _, layer := range e.layers {
		total += len(layer)
	}
	vertices := make([]int64, 0, total)
	for _, layer := range e.layers {
		vertices = append(vertices, layer...)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })

	return e.visit(&Subgraph{Root: e.root, Vertices: vertices})
}

// combinations walks every ki-sized subset of items in lexicographic order
// via the include/exclude recursion spec §4.2/§9 describes, calling visit
// once per subset. items must already be sorted ascending.
func combinations(items []int64, ki int, visit func([]int64) error) error {
	buf := make([]int64, 0, ki)

	var rec func(start int) error
	rec = func(start int) error {
		if len(buf) == ki {
			return visit(append([]int64(nil), buf...))
		}
		if len(items)-start < ki-len(buf) {
			return nil
		}

		buf = append(buf, items[start])
		if err := rec(start + 1); err != nil {
			return err
		}
		buf = buf[:len(buf)-1]

		return rec(start + 1)
	}

	return rec(0)
}
