package pagerank

import (
	"github.com/axgraph/callgraph/csr"
)

// PageRank computes the stationary distribution of g under teleportation.
// On an empty graph it returns an empty vector; a single node with a
// self-loop returns [1.0].
//
// Per iteration:
//  1. zero the next-rank buffer, then add the teleport term (1-d)/N to
//     every entry;
//  2. for each node u with out-degree k>0, distribute d*rank[u]/k to each
//     forward neighbor;
//  3. for each dangling node u (out-degree 0), add d*rank[u]/N to every
//     entry — the "distribute rank uniformly" dangling-mass correction;
//  4. compute the L1 difference between current and next, then swap
//     buffers; terminate early if the difference is below tol.
func PageRank(g *csr.Graph, opts ...Option) ([]float32, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.N()
	if n == 0 {
		return []float32{}, nil
	}

	rowOff, colIdx, _ := g.View()

	rank := make([]float32, n)
	next := make([]float32, n)
	init := float32(1.0) / float32(n)
	for i := range rank {
		rank[i] = init
	}

	teleport := (1 - o.damping) / float32(n)

	for iter := 0; iter < o.maxIter; iter++ {
		for i := range next {
			next[i] = teleport
		}

		for u := uint32(0); u < n; u++ {
			start, end := rowOff[u], rowOff[u+1]
			deg := end - start
			if deg == 0 {
				// dangling node: redistribute its mass uniformly
				share := o.damping * rank[u] / float32(n)
				for i := range next {
					next[i] += share
				}
				continue
			}
			share := o.damping * rank[u] / float32(deg)
			for _, v := range colIdx[start:end] {
				next[v] += share
			}
		}

		var diff float32
		for i := range rank {
			d := next[i] - rank[i]
			if d < 0 {
				d = -d
			}
			diff += d
		}
		rank, next = next, rank

		if diff < o.tol {
			break
		}
	}

	return rank, nil
}
