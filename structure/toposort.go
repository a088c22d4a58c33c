package structure

import "github.com/axgraph/callgraph/csr"

// Toposort computes a linear ordering of nodes such that for every forward
// edge u->v, u appears before v. It is DFS post-order emission with the
// final result reversed; fails with ErrCycleDetected if g is not acyclic.
func Toposort(g *csr.Graph) ([]uint32, error) {
	postOrder, cyclic := forwardDFS(g)
	if cyclic {
		return nil, ErrCycleDetected
	}
	for i, j := 0, len(postOrder)-1; i < j; i, j = i+1, j-1 {
		postOrder[i], postOrder[j] = postOrder[j], postOrder[i]
	}
	return postOrder, nil
}
