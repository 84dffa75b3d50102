package fixture_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motifscan/kavosh/core"
	"github.com/motifscan/kavosh/fixture"
)

func countEdges(t *testing.T, g *core.Graph) int {
	t.Helper()
	n := g.VertexCount()
	count := 0
	for i := int64(0); i < int64(n); i++ {
		for j := i + 1; j < int64(n); j++ {
			if _, ok := g.Edge(i, j); ok {
				count++
			}
		}
	}

	return count
}

func TestPath(t *testing.T) {
	g, err := fixture.Build("path5", false, false, false, fixture.Path(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 4, countEdges(t, g))
	for i := int64(0); i < 4; i++ {
		_, ok := g.Edge(i, i+1)
		require.True(t, ok, "missing edge %d-%d", i, i+1)
	}

	_, err = fixture.Build("toosmall", false, false, false, fixture.Path(1))
	require.ErrorIs(t, err, fixture.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := fixture.Build("cycle5", false, false, false, fixture.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 5, countEdges(t, g))
	_, ok := g.Edge(4, 0)
	require.True(t, ok, "missing wraparound edge 4-0")

	_, err = fixture.Build("toosmall", false, false, false, fixture.Cycle(2))
	require.ErrorIs(t, err, fixture.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := fixture.Build("k5", false, false, false, fixture.Complete(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 10, countEdges(t, g))
}

func TestStar(t *testing.T) {
	g, err := fixture.Build("star5", false, false, false, fixture.Star(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 4, countEdges(t, g))
	for i := int64(1); i < 5; i++ {
		_, ok := g.Edge(0, i)
		require.True(t, ok, "missing hub edge 0-%d", i)
	}

	_, err = fixture.Build("toosmall", false, false, false, fixture.Star(1))
	require.ErrorIs(t, err, fixture.ErrTooFewVertices)
}

func TestWheel(t *testing.T) {
	g, err := fixture.Build("wheel5", false, false, false, fixture.Wheel(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	// 4 hub spokes + 4 rim edges
	require.Equal(t, 8, countEdges(t, g))
	for i := int64(1); i < 5; i++ {
		_, ok := g.Edge(0, i)
		require.True(t, ok, "missing hub edge 0-%d", i)
	}
	_, ok := g.Edge(4, 1)
	require.True(t, ok, "missing rim wraparound edge 4-1")

	_, err = fixture.Build("toosmall", false, false, false, fixture.Wheel(3))
	require.ErrorIs(t, err, fixture.ErrTooFewVertices)
}

func TestBipartite(t *testing.T) {
	g, err := fixture.Build("k23", false, false, false, fixture.Bipartite(2, 3))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 6, countEdges(t, g))
	for i := int64(0); i < 2; i++ {
		for j := int64(2); j < 5; j++ {
			_, ok := g.Edge(i, j)
			require.True(t, ok, "missing cross edge %d-%d", i, j)
		}
	}
	// no edges within a side
	_, ok := g.Edge(0, 1)
	require.False(t, ok, "unexpected edge within left side")
}

func TestRandomSparse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, err := fixture.Build("sparse", false, false, false, fixture.RandomSparse(20, 0.3, rng))
	require.NoError(t, err)
	require.Equal(t, 20, g.VertexCount())

	// p=0 and p=1 are deterministic boundary cases
	rng = rand.New(rand.NewSource(1))
	empty, err := fixture.Build("empty", false, false, false, fixture.RandomSparse(5, 0, rng))
	require.NoError(t, err)
	require.Equal(t, 0, countEdges(t, empty))

	rng = rand.New(rand.NewSource(1))
	full, err := fixture.Build("full", false, false, false, fixture.RandomSparse(5, 1, rng))
	require.NoError(t, err)
	require.Equal(t, 10, countEdges(t, full))

	_, err = fixture.Build("badp", false, false, false, fixture.RandomSparse(5, 1.5, rng))
	require.ErrorIs(t, err, fixture.ErrInvalidProbability)

	_, err = fixture.Build("norng", false, false, false, fixture.RandomSparse(5, 0.5, nil))
	require.ErrorIs(t, err, fixture.ErrNeedRandSource)
}

func TestRandomRegular(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := fixture.Build("reg", false, false, false, fixture.RandomRegular(10, 3, rng))
	require.NoError(t, err)
	require.Equal(t, 10, g.VertexCount())
	require.Equal(t, 15, countEdges(t, g))

	for i := int64(0); i < 10; i++ {
		neighbors, err := g.Neighbors(i)
		require.NoError(t, err)
		require.Len(t, neighbors, 3, "vertex %d should have degree 3", i)
	}

	rng = rand.New(rand.NewSource(1))
	_, err = fixture.Build("oddparity", false, false, false, fixture.RandomRegular(5, 3, rng))
	require.ErrorIs(t, err, fixture.ErrTooFewVertices)

	rng = rand.New(rand.NewSource(1))
	_, err = fixture.Build("degtoohigh", false, false, false, fixture.RandomRegular(5, 5, rng))
	require.ErrorIs(t, err, fixture.ErrTooFewVertices)

	_, err = fixture.Build("norng", false, false, false, fixture.RandomRegular(10, 3, nil))
	require.ErrorIs(t, err, fixture.ErrNeedRandSource)
}

func TestVertexColors(t *testing.T) {
	g, err := fixture.Build("colored", false, true, false,
		fixture.Path(3),
		fixture.VertexColors([]int16{5, 1, 5}),
	)
	require.NoError(t, err)
	v0, err := g.Vertex(0)
	require.NoError(t, err)
	require.Equal(t, int16(5), v0.Color)
	v1, err := g.Vertex(1)
	require.NoError(t, err)
	require.Equal(t, int16(1), v1.Color)

	_, err = fixture.Build("mismatch", false, true, false,
		fixture.Path(3),
		fixture.VertexColors([]int16{5, 1}),
	)
	require.ErrorIs(t, err, fixture.ErrColorCountMismatch)
}

func TestCommunities(t *testing.T) {
	g, err := fixture.Build("communities", false, false, false,
		fixture.Complete(4),
		fixture.Communities([]int64{0, 0, 1, 1}),
	)
	require.NoError(t, err)
	v2, err := g.Vertex(2)
	require.NoError(t, err)
	require.Equal(t, int64(1), v2.Community)

	_, err = fixture.Build("mismatch", false, false, false,
		fixture.Complete(4),
		fixture.Communities([]int64{0, 0}),
	)
	require.ErrorIs(t, err, fixture.ErrColorCountMismatch)
}
