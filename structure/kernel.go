package structure

import "github.com/axgraph/callgraph/csr"

// frame is one level of an explicit DFS stack: the node being explored, its
// forward neighbor list, and the index of the next neighbor to examine.
type frame struct {
	node uint32
	nbrs []uint32
	idx  int
}

// forwardDFS runs the shared three-color DFS kernel over g's forward edges
// from every unvisited node in id order, recording each node's finish order
// (post-order) and reporting whether any back edge (an edge to a node still
// inStack) was encountered. An explicit stack is used instead of recursion
// so depth is bounded by heap, not goroutine stack, for graphs with tens of
// thousands of nodes (see S6).
func forwardDFS(g *csr.Graph) (postOrder []uint32, cyclic bool) {
	n := g.N()
	state := make([]color, n)
	postOrder = make([]uint32, 0, n)

	for start := uint32(0); start < n; start++ {
		if state[start] != unvisited {
			continue
		}
		nbrs, _ := g.Outgoing(start)
		stack := []frame{{node: start, nbrs: nbrs}}
		state[start] = inStack

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.idx < len(top.nbrs) {
				nbr := top.nbrs[top.idx]
				top.idx++
				switch state[nbr] {
				case unvisited:
					nbrNbrs, _ := g.Outgoing(nbr)
					state[nbr] = inStack
					stack = append(stack, frame{node: nbr, nbrs: nbrNbrs})
				case inStack:
					cyclic = true
				case finished:
					// already fully explored, nothing to do
				}
				continue
			}
			state[top.node] = finished
			postOrder = append(postOrder, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	return postOrder, cyclic
}
