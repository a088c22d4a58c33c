package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axgraph/callgraph/csr"
	"github.com/axgraph/callgraph/dijkstra"
)

func diamond() *csr.Graph {
	return csr.FromEdges([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 2},
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 3, Weight: 5},
	})
}

// TestDijkstraPath_S4Diamond locks in the weighted diamond scenario.
func TestDijkstraPath_S4Diamond(t *testing.T) {
	d, path, err := dijkstra.DijkstraPath(diamond(), 0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-9)
	assert.Equal(t, []uint32{0, 1, 3}, path)
}

func TestDijkstra_SourceEqualsTarget(t *testing.T) {
	_, path, err := dijkstra.DijkstraPath(diamond(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, path)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})
	_, _, err := dijkstra.DijkstraPath(g, 0, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_OutOfRangeSourceEmpty(t *testing.T) {
	g := csr.New()
	dist, err := dijkstra.Dijkstra(g, 9)
	require.NoError(t, err)
	assert.Empty(t, dist)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{{Source: 0, Target: 1, Weight: -1}})
	_, err := dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestDijkstra_AgreesWithDijkstraPath locks in property 8.7: Dijkstra(g,s)[v]
// equals DijkstraPath(g,s,v)'s distance for every reachable v.
func TestDijkstra_AgreesWithDijkstraPath(t *testing.T) {
	g := diamond()
	dist, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	for v, d := range dist {
		pd, _, err := dijkstra.DijkstraPath(g, 0, v)
		require.NoError(t, err)
		assert.InDelta(t, d, pd, 1e-9)
	}
}
