package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axgraph/callgraph/csr"
)

// TestFromEdges_S1 locks in the literal scenario from the spec: edges
// (0,1,1) (0,2,1) (1,2,1) must produce row_off=[0,2,3,3], col_idx=[1,2,2],
// and Incoming(2) = {0,1}.
func TestFromEdges_S1(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})

	require.EqualValues(t, 3, g.N())
	require.EqualValues(t, 3, g.E())

	rowOff, colIdx, _ := g.View()
	assert.Equal(t, []uint32{0, 2, 3, 3}, rowOff)
	assert.Equal(t, []uint32{1, 2, 2}, colIdx)

	in, err := g.Incoming(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint32{0, 1}, in)
}

func TestFromEdges_Empty(t *testing.T) {
	g := csr.FromEdges(nil)
	assert.EqualValues(t, 0, g.N())
	assert.EqualValues(t, 0, g.E())
	rowOff, _, _ := g.View()
	assert.Equal(t, []uint32{0}, rowOff)
}

// TestFromEdges_SelfLoopAndParallel asserts self-loops and parallel edges
// are preserved verbatim, never deduplicated.
func TestFromEdges_SelfLoopAndParallel(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{
		{Source: 0, Target: 0, Weight: 1},
		{Source: 0, Target: 1, Weight: 2},
		{Source: 0, Target: 1, Weight: 3},
	})
	out, err := g.Outgoing(0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 1}, out)
}

// TestInvariants_Properties checks the property invariants of §8 across a
// handful of constructed graphs.
func TestInvariants_Properties(t *testing.T) {
	graphs := []*csr.Graph{
		csr.FromEdges(nil),
		csr.FromEdges([]csr.Edge{{Source: 0, Target: 1, Weight: 1}}),
		csr.FromEdges([]csr.Edge{
			{Source: 0, Target: 1, Weight: 1},
			{Source: 1, Target: 2, Weight: 1},
			{Source: 2, Target: 0, Weight: 1},
			{Source: 2, Target: 2, Weight: 5},
		}),
	}

	for _, g := range graphs {
		rowOff, colIdx, w := g.View()
		rrowOff, rcolIdx, rw := g.ReverseView()

		require.Len(t, rowOff, int(g.N())+1)
		require.Len(t, rrowOff, int(g.N())+1)
		assert.EqualValues(t, 0, rowOff[0])
		assert.EqualValues(t, 0, rrowOff[0])
		assert.EqualValues(t, g.E(), rowOff[len(rowOff)-1])
		assert.EqualValues(t, g.E(), rrowOff[len(rrowOff)-1])

		for i := 1; i < len(rowOff); i++ {
			assert.GreaterOrEqual(t, rowOff[i], rowOff[i-1])
			assert.GreaterOrEqual(t, rrowOff[i], rrowOff[i-1])
		}

		require.Len(t, colIdx, int(g.E()))
		require.Len(t, w, int(g.E()))
		require.Len(t, rcolIdx, int(g.E()))
		require.Len(t, rw, int(g.E()))

		for _, id := range colIdx {
			assert.Less(t, id, g.N())
		}
		for _, id := range rcolIdx {
			assert.Less(t, id, g.N())
		}
	}
}

// TestAddEdge_WidensAndShifts verifies incremental insertion widens N,
// appends to the end of the source's row, and keeps both CSRs consistent.
func TestAddEdge_WidensAndShifts(t *testing.T) {
	g := csr.New()
	g.AddEdge(0, 3, 1.5)
	require.EqualValues(t, 4, g.N())
	require.EqualValues(t, 1, g.E())

	out, err := g.Outgoing(0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3}, out)

	g.AddEdge(0, 1, 2.5)
	out, err = g.Outgoing(0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 1}, out, "row-internal ordering is insertion order")

	in, err := g.Incoming(1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, in)
}

func TestOutgoing_NodeOutOfRange(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{{Source: 0, Target: 1, Weight: 1}})
	_, err := g.Outgoing(5)
	assert.ErrorIs(t, err, csr.ErrNodeOutOfRange)
	_, err = g.Incoming(5)
	assert.ErrorIs(t, err, csr.ErrNodeOutOfRange)
}

func TestAdjacency_OutOfRangeTolerated(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{{Source: 0, Target: 1, Weight: 1}})
	targets, weights := g.Adjacency(99)
	assert.Empty(t, targets)
	assert.Empty(t, weights)
}

func TestNames(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{{Source: 0, Target: 1, Weight: 1}})
	_, ok := g.Name(0)
	assert.False(t, ok)
	g.SetName(0, "main")
	name, ok := g.Name(0)
	require.True(t, ok)
	assert.Equal(t, "main", name)
}

func TestEnsureN_WidensWithoutEdges(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{{Source: 0, Target: 1, Weight: 1}})
	require.Equal(t, uint32(2), g.N())

	g.EnsureN(5)
	assert.Equal(t, uint32(5), g.N())
	assert.Equal(t, uint32(0), g.OutDegree(4))

	g.EnsureN(3) // no-op, already wider
	assert.Equal(t, uint32(5), g.N())
}
