package gpu_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axgraph/callgraph/csr"
	"github.com/axgraph/callgraph/gpu"
	"github.com/axgraph/callgraph/pagerank"
	"github.com/axgraph/callgraph/traversal"
)

func TestRequestDevice_DefaultLimits(t *testing.T) {
	dev, err := gpu.RequestDevice(context.Background())
	require.NoError(t, err)
	limits := dev.Limits()
	assert.Equal(t, uint64(2<<30), limits.MaxBufferBytes)
	assert.Equal(t, uint32(256), limits.PreferredAlignment)
}

func TestRequestDevice_SimulatedVRAMOption(t *testing.T) {
	dev, err := gpu.RequestDevice(context.Background(), gpu.WithSimulatedVRAM(1024))
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), dev.Limits().MaxBufferBytes)
}

func TestRequestDevice_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gpu.RequestDevice(ctx)
	assert.Error(t, err)
}

func TestBuffer_CreateAndMapRead(t *testing.T) {
	ctx := context.Background()
	dev, err := gpu.RequestDevice(ctx)
	require.NoError(t, err)

	buf, err := dev.CreateBufferInit(ctx, []byte{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), buf.Size())

	data, err := buf.MapRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)

	buf.Release()
	_, err = buf.MapRead(ctx)
	assert.ErrorIs(t, err, gpu.ErrBufferMap)
}

func TestCreateBuffer_ExceedsLimitsFails(t *testing.T) {
	ctx := context.Background()
	dev, err := gpu.RequestDevice(ctx, gpu.WithSimulatedVRAM(8))
	require.NoError(t, err)

	_, err = dev.CreateBuffer(ctx, 1024)
	assert.ErrorIs(t, err, gpu.ErrBufferCreate)
}

func TestUploadCSR_NilWeightsWhenAllZero(t *testing.T) {
	ctx := context.Background()
	dev, err := gpu.RequestDevice(ctx)
	require.NoError(t, err)

	g := csr.FromEdges([]csr.Edge{{Source: 0, Target: 1, Weight: 0}})
	buf, err := gpu.UploadCSR(ctx, dev, g)
	require.NoError(t, err)
	assert.Nil(t, buf.Weights)
	assert.Equal(t, g.N(), buf.N)
	assert.Equal(t, g.E(), buf.E)

	g2 := csr.FromEdges([]csr.Edge{{Source: 0, Target: 1, Weight: 2.5}})
	buf2, err := gpu.UploadCSR(ctx, dev, g2)
	require.NoError(t, err)
	assert.NotNil(t, buf2.Weights)
}

// TestBFSWave_AgreesWithCPU_S4Diamond locks the GPU BFS path against the
// CPU traversal path over the diamond graph (0->1, 0->2, 1->3, 2->3):
// reachability from 0 must match exactly.
func TestBFSWave_AgreesWithCPU_S4Diamond(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})

	ctx := context.Background()
	dev, err := gpu.RequestDevice(ctx)
	require.NoError(t, err)
	buf, err := gpu.UploadCSR(ctx, dev, g)
	require.NoError(t, err)

	dist, err := gpu.BFSWave(ctx, dev, buf, 0)
	require.NoError(t, err)

	reached, err := traversal.BFS(g, 0)
	require.NoError(t, err)

	for v := uint32(0); v < g.N(); v++ {
		_, wasReached := reached[v]
		gotReached := dist[v] != gpu.Infinity
		assert.Equal(t, wasReached, gotReached, "node %d reachability mismatch", v)
	}
	assert.Equal(t, uint32(0), dist[0])
	assert.Equal(t, uint32(1), dist[1])
	assert.Equal(t, uint32(1), dist[2])
	assert.Equal(t, uint32(2), dist[3])
}

// TestPageRankIter_AgreesWithCPU_S2Chain checks the GPU PageRank dispatch
// converges close to the CPU power-iteration result over the same chain.
func TestPageRankIter_AgreesWithCPU_S2Chain(t *testing.T) {
	g := csr.FromEdges([]csr.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	})

	cpuScores, err := pagerank.PageRank(g)
	require.NoError(t, err)

	ctx := context.Background()
	dev, err := gpu.RequestDevice(ctx)
	require.NoError(t, err)
	buf, err := gpu.UploadCSR(ctx, dev, g)
	require.NoError(t, err)

	gpuScores, err := gpu.PageRankIter(ctx, dev, buf, g, gpu.WithIterations(100))
	require.NoError(t, err)

	for v := range cpuScores {
		assert.InDelta(t, float64(cpuScores[v]), gpuScores[v], 0.01, "node %d score mismatch", v)
	}
}
