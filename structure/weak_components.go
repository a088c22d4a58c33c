package structure

import "github.com/axgraph/callgraph/csr"

// WeakComponents treats every forward and reverse edge as undirected and
// returns labels[v] = that node's component index, plus the component
// count. Linear in N+E.
func WeakComponents(g *csr.Graph) (labels []uint32, count int) {
	n := g.N()
	labels = make([]uint32, n)
	visited := make([]bool, n)

	var comp uint32
	for start := uint32(0); start < n; start++ {
		if visited[start] {
			continue
		}
		stack := []uint32{start}
		visited[start] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			labels[cur] = comp

			out, _ := g.Outgoing(cur)
			for _, nbr := range out {
				if !visited[nbr] {
					visited[nbr] = true
					stack = append(stack, nbr)
				}
			}
			in, _ := g.Incoming(cur)
			for _, nbr := range in {
				if !visited[nbr] {
					visited[nbr] = true
					stack = append(stack, nbr)
				}
			}
		}
		comp++
	}

	return labels, int(comp)
}
