package gpu

import (
	"context"
	"runtime"

	"github.com/axgraph/callgraph/csr"
)

const defaultDamping = 0.85

// PageRankOption configures PageRankIter.
type PageRankOption func(*pageRankOptions)

type pageRankOptions struct {
	iterations int
	damping    float64
}

func defaultPageRankOptions() pageRankOptions {
	return pageRankOptions{iterations: 20, damping: defaultDamping}
}

// WithIterations sets the fixed iteration count PageRankIter runs for
// (default 20). Unlike the CPU pagerank package, the reference dispatch
// model terminates after a fixed count rather than on a tolerance check, to
// keep the contract identical to a backend that cannot cheaply poll
// convergence from the host.
func WithIterations(n int) PageRankOption {
	return func(o *pageRankOptions) { o.iterations = n }
}

// WithDamping overrides the damping factor (default 0.85).
func WithDamping(d float64) PageRankOption {
	return func(o *pageRankOptions) { o.damping = d }
}

// PageRankIter runs fixed-iteration power-iteration PageRank over an
// uploaded graph, dispatching one simulated thread per destination node per
// iteration via the reverse CSR. g is required alongside buf to read the
// reverse adjacency and per-node out-degree; a future revision could upload
// the reverse arrays too, but nothing in this repo's GPU path needs reverse
// traversal anywhere else, so it is read host-side.
func PageRankIter(ctx context.Context, dev Device, buf CSRBuffers, g *csr.Graph, opts ...PageRankOption) ([]float64, error) {
	o := defaultPageRankOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := buf.N
	if n == 0 {
		return nil, nil
	}

	outDegree := make([]uint32, n)
	for v := uint32(0); v < n; v++ {
		outDegree[v] = g.OutDegree(v)
	}

	current := make([]float64, n)
	next := make([]float64, n)
	for v := range current {
		current[v] = 1.0 / float64(n)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	q := dev.Queue()
	base := (1 - o.damping) / float64(n)

	for iter := 0; iter < o.iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// dangling nodes (out-degree 0) spread their mass uniformly over
		// every node, as in the CPU pagerank package.
		var dangling float64
		for u := uint32(0); u < n; u++ {
			if outDegree[u] == 0 {
				dangling += current[u]
			}
		}
		seed := base + o.damping*dangling/float64(n)

		err := q.Submit(ctx, func() {
			dispatchPerNode(n, workers, func(v uint32) {
				acc := seed
				in, _ := g.Incoming(v)
				for _, u := range in {
					if k := outDegree[u]; k > 0 {
						acc += o.damping * current[u] / float64(k)
					}
				}
				next[v] = acc
			})
		})
		if err != nil {
			return nil, err
		}
		if err := q.Wait(ctx); err != nil {
			return nil, err
		}
		current, next = next, current
	}

	return current, nil
}
