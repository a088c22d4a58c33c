package gen

import (
	"math/rand"

	"github.com/axgraph/callgraph/csr"
)

const minRingNodes = 3

// Ring builds a directed n-cycle: edges i -> (i+1 mod n), each weight 1, in
// ascending i order. Requires n >= 3.
func Ring(n int) (*csr.Graph, error) {
	if n < minRingNodes {
		return nil, ErrTooFewNodes
	}
	edges := make([]csr.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = csr.Edge{Source: uint32(i), Target: uint32((i + 1) % n), Weight: 1}
	}
	return csr.FromEdges(edges), nil
}

// Chain builds a directed simple path 0 -> 1 -> … -> n-1. Requires n >= 1;
// a single node yields an edgeless graph.
func Chain(n int) (*csr.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	if n == 1 {
		g := csr.New()
		g.EnsureN(1)
		return g, nil
	}
	edges := make([]csr.Edge, n-1)
	for i := 0; i < n-1; i++ {
		edges[i] = csr.Edge{Source: uint32(i), Target: uint32(i + 1), Weight: 1}
	}
	return csr.FromEdges(edges), nil
}

// Star builds a directed star with node 0 as the hub: edges 0 -> i for
// i = 1 … n-1. Requires n >= 1; n == 1 yields a single isolated hub.
func Star(n int) (*csr.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	if n == 1 {
		g := csr.New()
		g.EnsureN(1)
		return g, nil
	}
	edges := make([]csr.Edge, n-1)
	for i := 1; i < n; i++ {
		edges[i-1] = csr.Edge{Source: 0, Target: uint32(i), Weight: 1}
	}
	return csr.FromEdges(edges), nil
}

// Complete builds the directed complete graph K_n: an edge i -> j for every
// ordered pair with i != j. Requires n >= 1.
func Complete(n int) (*csr.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	edges := make([]csr.Edge, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			edges = append(edges, csr.Edge{Source: uint32(i), Target: uint32(j), Weight: 1})
		}
	}
	g := csr.FromEdges(edges)
	g.EnsureN(uint32(n)) // covers n==1, where the loop above adds no edges
	return g, nil
}

// RandomSparse samples a directed Erdős–Rényi-style graph over n nodes:
// every ordered pair (i, j), i != j, is included independently with
// probability p. Trial order is i asc, then j asc, so results are
// deterministic for a fixed rng and seed. Requires n >= 1 and p in [0, 1].
func RandomSparse(n int, p float64, rng *rand.Rand) (*csr.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}

	var edges []csr.Edge
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				edges = append(edges, csr.Edge{Source: uint32(i), Target: uint32(j), Weight: 1})
			}
		}
	}
	g := csr.FromEdges(edges)
	g.EnsureN(uint32(n))
	return g, nil
}
