package dijkstra

// item pairs a node with its current known distance, ordered by dist
// ascending in the heap below. Mirrors the teacher's dijkstra.nodeItem.
type item struct {
	node uint32
	dist float64
}

// nodePQ is a min-heap of item, ordered by dist ascending, matching the
// teacher's dijkstra.nodePQ lazy-decrease-key shape: a shorter distance to
// an already-queued node is pushed as a new entry rather than mutating the
// existing one; stale entries are skipped on pop via the finalized set.
type nodePQ []item

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(item)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
