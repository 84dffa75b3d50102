package motifcfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motifscan/kavosh/motifcfg"
)

func TestNew_Defaults(t *testing.T) {
	c, err := motifcfg.New()
	require.NoError(t, err)
	require.Equal(t, motifcfg.Config{}, c)
}

func TestNew_RejectsBothColorings(t *testing.T) {
	_, err := motifcfg.New(motifcfg.WithVertexColors(), motifcfg.WithEdgeColors())
	require.ErrorIs(t, err, motifcfg.ErrMutuallyExclusiveColoring)
}

func TestNew_AppliesAllSwitches(t *testing.T) {
	c, err := motifcfg.New(
		motifcfg.WithEdgeColors(),
		motifcfg.WithCommunityBased(),
		motifcfg.WithSubgraphWriting(),
		motifcfg.WithNonTruncatedFingerprints(),
	)
	require.NoError(t, err)
	require.True(t, c.EdgeColored)
	require.True(t, c.CommunityBased)
	require.True(t, c.WriteSubgraphs)
	require.True(t, c.NonTruncated)
}
