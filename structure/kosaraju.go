package structure

import "github.com/axgraph/callgraph/csr"

// KosarajuSCC computes strongly connected components. Pass 1 produces a
// finish-time order on the forward graph (post-order push, shared with
// Toposort's forwardDFS). Pass 2 iterates nodes in reverse finish order;
// each DFS in the reverse graph yields one SCC. The returned list is in
// reverse topological order of the condensation. Self-loops yield an SCC of
// size 1; linear in N+E.
func KosarajuSCC(g *csr.Graph) [][]uint32 {
	postOrder, _ := forwardDFS(g)

	n := g.N()
	visited := make([]bool, n)
	var sccs [][]uint32

	for i := len(postOrder) - 1; i >= 0; i-- {
		start := postOrder[i]
		if visited[start] {
			continue
		}
		visited[start] = true
		stack := []uint32{start}
		var component []uint32
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, cur)

			preds, _ := g.Incoming(cur)
			for _, p := range preds {
				if !visited[p] {
					visited[p] = true
					stack = append(stack, p)
				}
			}
		}
		sccs = append(sccs, component)
	}

	// pass 2 discovers SCCs in topological order of the condensation;
	// reverse to return them in reverse topological order.
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	return sccs
}
