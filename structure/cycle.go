package structure

import "github.com/axgraph/callgraph/csr"

// IsCyclic reports whether g contains any directed cycle, including
// self-loops. Linear in N+E.
func IsCyclic(g *csr.Graph) bool {
	_, cyclic := forwardDFS(g)
	return cyclic
}
