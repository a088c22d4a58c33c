package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axgraph/callgraph/ingest"
)

func TestAddCall_AssignsIncrementingIDs(t *testing.T) {
	g := ingest.New()

	mainID, fooID, err := g.AddCall("main", "foo")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), mainID)
	assert.Equal(t, uint32(1), fooID)

	fooID2, barID, err := g.AddCall("foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, fooID, fooID2, "foo must keep its first-assigned id")
	assert.Equal(t, uint32(2), barID)
}

func TestAddCall_EmptyName(t *testing.T) {
	g := ingest.New()
	_, _, err := g.AddCall("", "foo")
	assert.ErrorIs(t, err, ingest.ErrEmptyName)
}

func TestCompile_NamesAndAdjacency(t *testing.T) {
	g := ingest.New()
	_, _, err := g.AddCall("main", "foo")
	require.NoError(t, err)
	_, _, err = g.AddCall("main", "bar")
	require.NoError(t, err)

	compiled := g.Compile()
	require.Equal(t, uint32(3), compiled.N())
	require.Equal(t, uint32(2), compiled.E())

	mainID, ok := g.NodeID("main")
	require.True(t, ok)
	name, ok := compiled.Name(mainID)
	require.True(t, ok)
	assert.Equal(t, "main", name)

	out, err := compiled.Outgoing(mainID)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestCompile_EmptyGraph(t *testing.T) {
	g := ingest.New()
	compiled := g.Compile()
	assert.Equal(t, uint32(0), compiled.N())
}
