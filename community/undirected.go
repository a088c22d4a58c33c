package community

import "github.com/axgraph/callgraph/csr"

// BuildUndirectedView symmetrizes g's forward adjacency: direction is
// discarded (the reverse CSR mirrors the same edges, so only the forward
// array is walked) and every edge becomes an undirected stub pair.
func BuildUndirectedView(g *csr.Graph) UndirectedView {
	n := g.N()
	rowOff, colIdx, w := g.View()

	edges := make([]WeightedEdge, 0, len(colIdx))
	for u := uint32(0); u < n; u++ {
		for i := rowOff[u]; i < rowOff[u+1]; i++ {
			edges = append(edges, WeightedEdge{U: u, V: colIdx[i], Weight: float64(w[i])})
		}
	}
	return buildFromEdges(n, edges)
}

// buildFromEdges constructs an UndirectedView over n nodes from an explicit
// edge list. It is shared by BuildUndirectedView (original csr.Graph edges)
// and the aggregation step of Louvain (edges relabeled to community ids at
// a coarser level).
func buildFromEdges(n uint32, edges []WeightedEdge) UndirectedView {
	adj := make([][]neighbor, n)
	degree := make([]float64, n)
	var total float64

	for _, e := range edges {
		total += e.Weight
		if e.U == e.V {
			adj[e.U] = append(adj[e.U], neighbor{node: e.U, weight: e.Weight}, neighbor{node: e.U, weight: e.Weight})
			degree[e.U] += 2 * e.Weight
			continue
		}
		adj[e.U] = append(adj[e.U], neighbor{node: e.V, weight: e.Weight})
		adj[e.V] = append(adj[e.V], neighbor{node: e.U, weight: e.Weight})
		degree[e.U] += e.Weight
		degree[e.V] += e.Weight
	}

	return UndirectedView{N: n, Adj: adj, Degree: degree, TotalWeight: total}
}
