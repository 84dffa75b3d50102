package layer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motifscan/kavosh/core"
	"github.com/motifscan/kavosh/enumerate"
	"github.com/motifscan/kavosh/layer"
	"github.com/motifscan/kavosh/motifcfg"
)

func TestEncode_Uncolored(t *testing.T) {
	g, err := core.NewGraph("t", true, false, false)
	require.NoError(t, err)
	for i := int64(0); i < 3; i++ {
		require.NoError(t, g.AddVertex(i, i, core.NoCommunity, core.NoColor))
	}
	require.NoError(t, g.AddEdge(0, 1, -1, core.NoColor))
	require.NoError(t, g.AddEdge(1, 2, -1, core.NoColor))

	sub := &enumerate.Subgraph{Root: 0, Vertices: []int64{0, 1, 2}}
	cfg, err := motifcfg.New()
	require.NoError(t, err)

	in, err := layer.Encode(sub, g, cfg)
	require.NoError(t, err)
	require.Equal(t, 3, in.N)
	require.Equal(t, []uint64{0b010, 0b100, 0b000}, in.Adj)
	require.Equal(t, [][]int{{0, 1, 2}}, in.Cells)
}

func TestEncode_VertexColoredGroupsByAscendingColor(t *testing.T) {
	g, err := core.NewGraph("t", false, true, false)
	require.NoError(t, err)
	colors := []int16{5, 1, 5}
	for i := int64(0); i < 3; i++ {
		require.NoError(t, g.AddVertex(i, i, core.NoCommunity, colors[i]))
	}

	sub := &enumerate.Subgraph{Root: 0, Vertices: []int64{0, 1, 2}}
	cfg, err := motifcfg.New(motifcfg.WithVertexColors())
	require.NoError(t, err)

	in, err := layer.Encode(sub, g, cfg)
	require.NoError(t, err)
	// color 1 (vertex at position 1) sorts before color 5 (positions 0,2).
	require.Equal(t, [][]int{{1}, {0, 2}}, in.Cells)
}

func TestEncode_EdgeColoredBuildsLayerCycleAndColorBits(t *testing.T) {
	g, err := core.NewGraph("t", true, false, true)
	require.NoError(t, err)
	for i := int64(0); i < 2; i++ {
		require.NoError(t, g.AddVertex(i, i, core.NoCommunity, core.NoColor))
	}
	require.NoError(t, g.AddEdge(0, 1, -1, 1)) // color 1 -> mask 2 -> layer 1 only
	g.NEdgeTypes = 2                           // nedge_types=2 -> L=ceil(log2(3))=2

	sub := &enumerate.Subgraph{Root: 0, Vertices: []int64{0, 1}}
	cfg, err := motifcfg.New(motifcfg.WithEdgeColors())
	require.NoError(t, err)

	in, err := layer.Encode(sub, g, cfg)
	require.NoError(t, err)
	require.Equal(t, 4, in.N) // L=2, k=2
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, in.Cells)

	// layer-linking cycle: pos0 layer0(idx0) -> pos0 layer1(idx2), and back.
	require.NotZero(t, in.Adj[0]&(1<<2))
	require.NotZero(t, in.Adj[2]&(1<<0))
	// color-1 edge (mask=2, bit1 set) only appears on layer 1: idx2(=pos0,l1) -> idx3(=pos1,l1).
	require.NotZero(t, in.Adj[2]&(1<<3))
	require.Zero(t, in.Adj[0]&(1<<1))
}
