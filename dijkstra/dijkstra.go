package dijkstra

import (
	"container/heap"

	"github.com/axgraph/callgraph/csr"
)

// Dijkstra returns a distance map from every node reachable from source
// (including source itself, at 0) to cumulative weight. An out-of-range
// source returns an empty map, no error. A fast O(E) pre-scan detects
// negative weights and fails with ErrNegativeWeight rather than producing
// silently wrong results; behavior on negative weights is otherwise
// undefined, per the spec.
func Dijkstra(g *csr.Graph, source uint32) (map[uint32]float64, error) {
	dist, _, err := run(g, source, false)
	return dist, err
}

// DijkstraPath returns the distance and the full node path from source to
// target, reconstructed by walking a predecessor map and reversing. If
// source == target, it returns (0, [source], nil). If target is
// unreachable, it returns ErrNoPath.
func DijkstraPath(g *csr.Graph, source, target uint32) (float64, []uint32, error) {
	if source == target {
		if g != nil && source < g.N() {
			return 0, []uint32{source}, nil
		}
	}

	dist, prev, err := run(g, source, true)
	if err != nil {
		return 0, nil, err
	}

	d, ok := dist[target]
	if !ok {
		return 0, nil, ErrNoPath
	}

	path := []uint32{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return 0, nil, ErrNoPath
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return d, path, nil
}

// run drives the shared min-heap relaxation loop. When trackPath is true it
// also maintains a predecessor map.
func run(g *csr.Graph, source uint32, trackPath bool) (map[uint32]float64, map[uint32]uint32, error) {
	dist := make(map[uint32]float64)
	if g == nil || source >= g.N() {
		return dist, nil, nil
	}

	rowOff, colIdx, w := g.View()
	for i := range colIdx {
		if w[i] < 0 {
			return nil, nil, ErrNegativeWeight
		}
	}

	var prev map[uint32]uint32
	if trackPath {
		prev = make(map[uint32]uint32)
	}

	finalized := make(map[uint32]bool)
	pq := &nodePQ{{node: source, dist: 0}}
	heap.Init(pq)
	dist[source] = 0

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		u, d := cur.node, cur.dist

		if finalized[u] {
			continue
		}
		finalized[u] = true

		start, end := rowOff[u], rowOff[u+1]
		for i := start; i < end; i++ {
			v := colIdx[i]
			newDist := d + float64(w[i])
			if best, ok := dist[v]; ok && newDist >= best {
				continue
			}
			dist[v] = newDist
			if prev != nil {
				prev[v] = u
			}
			heap.Push(pq, item{node: v, dist: newDist})
		}
	}

	return dist, prev, nil
}
