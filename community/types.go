package community

// WeightedEdge is one undirected edge contribution: either a raw forward
// edge from a csr.Graph, or a relabeled edge produced while aggregating a
// coarser level of the Louvain hierarchy.
type WeightedEdge struct {
	U, V   uint32
	Weight float64
}

// neighbor is one stub in a node's adjacency list.
type neighbor struct {
	node   uint32
	weight float64
}

// UndirectedView is the symmetrized, weighted view of a graph that Louvain
// and Modularity operate on. Each original edge (u, v, w) contributes a stub
// of weight w to both Adj[u] and Adj[v] (two stubs of weight w to Adj[u]
// alone when u == v, the standard self-loop convention). Degree[v] is the
// sum of the weights of Adj[v]'s stubs, and TotalWeight is the sum of the
// original edge weights, so that 2*TotalWeight == sum(Degree).
type UndirectedView struct {
	N           uint32
	Adj         [][]neighbor
	Degree      []float64
	TotalWeight float64
}
