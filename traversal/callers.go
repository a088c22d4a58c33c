package traversal

import (
	"github.com/axgraph/callgraph/csr"
)

// FindCallers performs the same traversal as BFS but over the reverse CSR,
// bounded to maxDepth hops. maxDepth == 0 yields the empty set; the target
// itself is always excluded from the result. The frontier is advanced level
// by level: a level counter strictly increments only after every node at
// the current level has been expanded, matching the teacher's BFS-by-queue
// shape rather than an unbounded flood fill.
func FindCallers(g *csr.Graph, target uint32, maxDepth int, opts ...Option) (map[uint32]struct{}, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	result := make(map[uint32]struct{})
	if g == nil || target >= g.N() || maxDepth <= 0 {
		return result, nil
	}

	visited := map[uint32]struct{}{target: {}}
	frontier := []uint32{target}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		select {
		case <-o.ctx.Done():
			return result, o.ctx.Err()
		default:
		}

		var next []uint32
		for _, cur := range frontier {
			preds, err := g.Incoming(cur)
			if err != nil {
				continue
			}
			for _, p := range preds {
				if _, seen := visited[p]; seen {
					continue
				}
				visited[p] = struct{}{}
				result[p] = struct{}{}
				next = append(next, p)
			}
		}
		frontier = next
	}

	return result, nil
}
