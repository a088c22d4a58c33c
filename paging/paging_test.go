package paging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axgraph/callgraph/csr"
	"github.com/axgraph/callgraph/gpu"
	"github.com/axgraph/callgraph/paging"
	"github.com/axgraph/callgraph/traversal"
)

func TestNewMemoryPlan(t *testing.T) {
	plan := paging.NewMemoryPlan(gpu.Limits{MaxBufferBytes: 1 << 30}) // 1 GiB
	assert.Equal(t, uint64(float64(1<<30)*0.70), plan.BudgetBytes)
	assert.Equal(t, paging.MorselBytes, plan.MorselBytes)
	assert.GreaterOrEqual(t, plan.MaxResidentMorsels, 1)
}

func TestNewMemoryPlan_FloorsAtOneMorsel(t *testing.T) {
	plan := paging.NewMemoryPlan(gpu.Limits{MaxBufferBytes: 1024})
	assert.Equal(t, 1, plan.MaxResidentMorsels)
}

// TestPartitioner_CoversRingWithNoGapsOrOverlaps builds a ring graph and
// checks the tile partition covers every node exactly once.
func TestPartitioner_CoversRingWithNoGapsOrOverlaps(t *testing.T) {
	const n = 500
	edges := make([]csr.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = csr.Edge{Source: uint32(i), Target: uint32((i + 1) % n), Weight: 1}
	}
	g := csr.FromEdges(edges)

	plan := paging.MemoryPlan{BudgetBytes: 1 << 20, MorselBytes: 4096, MaxResidentMorsels: 4}
	p := paging.NewPartitioner(g, plan)

	seen := make([]bool, n)
	for _, tile := range p.Tiles() {
		for v := tile.Start; v < tile.End; v++ {
			require.False(t, seen[v], "node %d covered by more than one tile", v)
			seen[v] = true
		}
	}
	for v := 0; v < n; v++ {
		assert.True(t, seen[v], "node %d not covered by any tile", v)
	}

	for v := uint32(0); v < uint32(n); v++ {
		tile, ok := p.TileFor(v)
		require.True(t, ok)
		assert.True(t, tile.Contains(v))
	}
}

type fakeBuffer struct {
	released bool
}

func (b *fakeBuffer) Size() uint64                                { return 0 }
func (b *fakeBuffer) MapRead(ctx context.Context) ([]byte, error) { return nil, nil }
func (b *fakeBuffer) Release()                                    { b.released = true }

func TestTileCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := paging.NewTileCache(2)
	b0, b1, b2 := &fakeBuffer{}, &fakeBuffer{}, &fakeBuffer{}

	_, evicted := cache.Insert(0, b0)
	assert.False(t, evicted)
	_, evicted = cache.Insert(1, b1)
	assert.False(t, evicted)

	evictedID, evicted := cache.Insert(2, b2)
	require.True(t, evicted)
	assert.Equal(t, 0, evictedID)
	assert.True(t, b0.released)

	_, ok := cache.Get(0)
	assert.False(t, ok)
	_, ok = cache.Get(1)
	assert.True(t, ok)
	_, ok = cache.Get(2)
	assert.True(t, ok)
}

func TestTileCache_GetPromotesAndChangesEvictionOrder(t *testing.T) {
	cache := paging.NewTileCache(2)
	b0, b1, b2 := &fakeBuffer{}, &fakeBuffer{}, &fakeBuffer{}
	cache.Insert(0, b0)
	cache.Insert(1, b1)

	_, _ = cache.Get(0) // promote 0, making 1 the LRU entry

	evictedID, evicted := cache.Insert(2, b2)
	require.True(t, evicted)
	assert.Equal(t, 1, evictedID)
}

// TestPagedBFS_TinyBudgetAgreesWithCPU forces the host-tiled path with a
// tiny simulated VRAM budget and checks its reachability against the CPU
// traversal path over the same ring.
func TestPagedBFS_TinyBudgetAgreesWithCPU(t *testing.T) {
	const n = 300
	edges := make([]csr.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = csr.Edge{Source: uint32(i), Target: uint32((i + 1) % n), Weight: 1}
	}
	g := csr.FromEdges(edges)

	ctx := context.Background()
	dev, err := gpu.RequestDevice(ctx, gpu.WithSimulatedVRAM(4096))
	require.NoError(t, err)

	dist, visited, err := paging.PagedBFS(ctx, dev, g, 0)
	require.NoError(t, err)

	reached, err := traversal.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, len(reached), visited)

	for v := uint32(0); v < g.N(); v++ {
		_, wasReached := reached[v]
		gotReached := dist[v] != gpu.Infinity
		assert.Equal(t, wasReached, gotReached, "node %d reachability mismatch", v)
	}
}

func TestPagedBFS_LargeBudgetUsesSingleTileGPUPath(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})
	ctx := context.Background()
	dev, err := gpu.RequestDevice(ctx)
	require.NoError(t, err)

	dist, visited, err := paging.PagedBFS(ctx, dev, g, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, visited)
	assert.Equal(t, uint32(0), dist[0])
	assert.Equal(t, uint32(2), dist[2])
}
