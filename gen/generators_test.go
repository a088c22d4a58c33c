package gen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axgraph/callgraph/gen"
)

func TestRing(t *testing.T) {
	g, err := gen.Ring(5)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), g.N())
	assert.Equal(t, uint32(5), g.E())
	for i := uint32(0); i < 5; i++ {
		out, err := g.Outgoing(i)
		require.NoError(t, err)
		assert.Equal(t, []uint32{(i + 1) % 5}, out)
	}
}

func TestRing_TooFewNodes(t *testing.T) {
	_, err := gen.Ring(2)
	assert.ErrorIs(t, err, gen.ErrTooFewNodes)
}

// TestRing_10000NodeRing locks in the scenario needed to exercise the
// paged/tiled GPU BFS path over a large graph.
func TestRing_10000NodeRing(t *testing.T) {
	g, err := gen.Ring(10000)
	require.NoError(t, err)
	assert.Equal(t, uint32(10000), g.N())
	assert.Equal(t, uint32(10000), g.E())
}

func TestChain(t *testing.T) {
	g, err := gen.Chain(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), g.N())
	assert.Equal(t, uint32(3), g.E())

	_, err = gen.Chain(1)
	require.NoError(t, err)
}

func TestStar(t *testing.T) {
	g, err := gen.Star(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), g.N())
	out, err := g.Outgoing(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint32{1, 2, 3}, out)
	for i := uint32(1); i < 4; i++ {
		assert.Equal(t, uint32(0), g.OutDegree(i))
	}
}

func TestComplete(t *testing.T) {
	g, err := gen.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), g.N())
	assert.Equal(t, uint32(12), g.E())
	for i := uint32(0); i < 4; i++ {
		assert.Equal(t, uint32(3), g.OutDegree(i))
	}
}

func TestComplete_SingleNode(t *testing.T) {
	g, err := gen.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), g.N())
	assert.Equal(t, uint32(0), g.E())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	g1, err := gen.RandomSparse(20, 0.3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	g2, err := gen.RandomSparse(20, 0.3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, g1.E(), g2.E())
	assert.Equal(t, g1.N(), g2.N())
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := gen.RandomSparse(5, 1.5, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, gen.ErrInvalidProbability)
}

func TestRandomSparse_ZeroProbabilityYieldsNoEdges(t *testing.T) {
	g, err := gen.RandomSparse(10, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, uint32(10), g.N())
	assert.Equal(t, uint32(0), g.E())
}
