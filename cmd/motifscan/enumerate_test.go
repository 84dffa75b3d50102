package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motifscan/kavosh/motifcfg"
)

func TestBuildOptions(t *testing.T) {
	f := &enumerateFlags{
		edgeColored:    true,
		communityBased: true,
		writeSubgraphs: true,
		nonTruncated:   true,
	}
	cfg, err := motifcfg.New(buildOptions(f)...)
	require.NoError(t, err)
	require.True(t, cfg.EdgeColored)
	require.True(t, cfg.CommunityBased)
	require.True(t, cfg.WriteSubgraphs)
	require.True(t, cfg.NonTruncated)
	require.False(t, cfg.VertexColored)
}

func TestBuildOptions_RejectsBothColorings(t *testing.T) {
	f := &enumerateFlags{vertexColored: true, edgeColored: true}
	_, err := motifcfg.New(buildOptions(f)...)
	require.ErrorIs(t, err, motifcfg.ErrMutuallyExclusiveColoring)
}

func TestFormatSubgraphLine(t *testing.T) {
	line, err := formatSubgraphLine([]byte{0xde, 0xad}, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "dead: 1 2 3\n", line)
}
