package layer

import (
	"sort"

	"github.com/motifscan/kavosh/canon"
	"github.com/motifscan/kavosh/core"
	"github.com/motifscan/kavosh/enumerate"
	"github.com/motifscan/kavosh/motifcfg"
)

// Encode translates sub into the input canon.Canonicalize expects, per
// spec §4.3's three paths. Subgraph positions are assigned 0..k-1 in
// ascending vertex-id order (sub.Vertices is already sorted that way).
func Encode(sub *enumerate.Subgraph, g *core.Graph, cfg motifcfg.Config) (*canon.Input, error) {
	k := len(sub.Vertices)
	for _, v := range sub.Vertices {
		if !g.HasVertex(v) {
			return nil, ErrVertexMissing
		}
	}

	switch {
	case cfg.EdgeColored:
		return encodeEdgeColored(sub, g, k)
	case cfg.VertexColored:
		return encodeVertexColored(sub, g, k)
	default:
		return encodeUncolored(sub, g, k)
	}
}

// baseAdjacency builds the k-vertex adjacency over sub's own positions,
// shared by the no-coloring and vertex-coloring paths.
func baseAdjacency(sub *enumerate.Subgraph, g *core.Graph, k int) []uint64 {
	adj := make([]uint64, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			if g.HasDirectedEdgeFromTo(sub.Vertices[i], sub.Vertices[j]) {
				adj[i] |= uint64(1) << uint(j)
			}
		}
	}

	return adj
}

func encodeUncolored(sub *enumerate.Subgraph, g *core.Graph, k int) (*canon.Input, error) {
	return &canon.Input{
		N:     k,
		Adj:   baseAdjacency(sub, g, k),
		Cells: [][]int{identityCell(k)},
	}, nil
}

// encodeVertexColored partitions the k positions by ascending vertex color,
// per spec §4.3: "grouping the k subgraph vertices by their color, visiting
// colors in ascending numeric order".
func encodeVertexColored(sub *enumerate.Subgraph, g *core.Graph, k int) (*canon.Input, error) {
	byColor := make(map[int16][]int)
	for pos, vid := range sub.Vertices {
		v, err := g.Vertex(vid)
		if err != nil {
			return nil, ErrVertexMissing
		}
		byColor[v.Color] = append(byColor[v.Color], pos)
	}

	colors := make([]int16, 0, len(byColor))
	for c := range byColor {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })

	cells := make([][]int, 0, len(colors))
	for _, c := range colors {
		cells = append(cells, byColor[c])
	}

	return &canon.Input{
		N:     k,
		Adj:   baseAdjacency(sub, g, k),
		Cells: cells,
	}, nil
}

// encodeEdgeColored builds the L*k-vertex layered digraph of spec §4.3: a
// layer-linking cycle tying together the L layer-copies of each subgraph
// vertex, plus each induced edge's color bit-mask placing that edge on the
// layers set in (color+1).
func encodeEdgeColored(sub *enumerate.Subgraph, g *core.Graph, k int) (*canon.Input, error) {
	l := layerCount(g.NEdgeTypes)
	n := l * k
	adj := make([]uint64, n)

	layered := func(pos, layer int) int { return pos + layer*k }

	for pos := 0; pos < k; pos++ {
		for lay := 0; lay < l; lay++ {
			next := (lay + 1) % l
			adj[layered(pos, lay)] |= uint64(1) << uint(layered(pos, next))
		}
	}

	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			if a == b {
				continue
			}
			if !g.HasDirectedEdgeFromTo(sub.Vertices[a], sub.Vertices[b]) {
				continue
			}
			e, ok := g.Edge(sub.Vertices[a], sub.Vertices[b])
			if !ok {
				continue
			}
			color := e.Color
			if color == core.NoColor {
				color = 0
			}
			mask := int(color) + 1
			for p := 0; p < l; p++ {
				if mask&(1<<p) == 0 {
					continue
				}
				adj[layered(a, p)] |= uint64(1) << uint(layered(b, p))
			}
		}
	}

	cells := make([][]int, l)
	for lay := 0; lay < l; lay++ {
		cell := make([]int, k)
		for pos := 0; pos < k; pos++ {
			cell[pos] = layered(pos, lay)
		}
		cells[lay] = cell
	}

	return &canon.Input{N: n, Adj: adj, Cells: cells}, nil
}

// layerCount computes L = ceil(log2(nedgeTypes+1)), clamped to at least 1.
func layerCount(nedgeTypes int) int {
	x := nedgeTypes + 1
	l := 0
	v := 1
	for v < x {
		v <<= 1
		l++
	}
	if l < 1 {
		l = 1
	}

	return l
}

func identityCell(k int) []int {
	cell := make([]int, k)
	for i := range cell {
		cell[i] = i
	}

	return cell
}
