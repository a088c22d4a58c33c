package community

// Detector assigns every node of an undirected view to a community. The
// built-in Louvain implementation satisfies this interface; callers may
// supply their own (a label-propagation detector, a ground-truth oracle in
// tests) wherever Louvain's greedy heuristic is unsuitable.
type Detector interface {
	Detect(uv UndirectedView) (labels []uint32, err error)
}

// blondelDetector is the default Detector: the two-phase algorithm of
// Blondel, Guillaume, Lambiotte & Lefebvre (2008), alternating local node
// moves with super-node aggregation until a pass produces no further
// aggregation.
type blondelDetector struct {
	maxPasses int
	maxLevels int
}

func newBlondelDetector(o options) *blondelDetector {
	return &blondelDetector{maxPasses: o.maxPasses, maxLevels: o.maxLevels}
}

// Detect runs the level hierarchy and returns, for each original node, the
// community id it ultimately landed in at the coarsest level reached.
func (d *blondelDetector) Detect(uv UndirectedView) (labels []uint32, err error) {
	global := make([]uint32, uv.N)
	for v := range global {
		global[v] = uint32(v)
	}
	if uv.N == 0 {
		return global, nil
	}

	cur := uv
	for level := 0; level < d.maxLevels; level++ {
		localLabels := localMove(cur, d.maxPasses)
		numComms := renumber(localLabels)

		// compose: every original node's community becomes its level's
		// super-node community.
		for v := range global {
			global[v] = localLabels[global[v]]
		}

		if numComms == int(cur.N) {
			// no node changed community this level; further aggregation
			// would be a no-op, so stop.
			break
		}
		cur = aggregate(cur, localLabels, numComms)
		if numComms == 1 {
			break
		}
	}
	return global, nil
}

// localMove repeatedly sweeps every node, moving it into whichever
// neighboring community (including its own) maximizes the standard Louvain
// gain term, until a full sweep makes no move or maxPasses is reached.
func localMove(uv UndirectedView, maxPasses int) []uint32 {
	n := uv.N
	labels := make([]uint32, n)
	commDegree := make([]float64, n)
	for v := uint32(0); v < n; v++ {
		labels[v] = v
		commDegree[v] = uv.Degree[v]
	}
	twoM := 2 * uv.TotalWeight
	if twoM == 0 {
		return labels
	}

	weightToComm := make(map[uint32]float64)
	for pass := 0; pass < maxPasses; pass++ {
		moved := false
		for v := uint32(0); v < n; v++ {
			cv := labels[v]
			commDegree[cv] -= uv.Degree[v]

			for k := range weightToComm {
				delete(weightToComm, k)
			}
			for _, nb := range uv.Adj[v] {
				if nb.node == v {
					continue
				}
				weightToComm[labels[nb.node]] += nb.weight
			}

			bestC := cv
			bestGain := weightToComm[cv] - commDegree[cv]*uv.Degree[v]/twoM
			for c, w := range weightToComm {
				gain := w - commDegree[c]*uv.Degree[v]/twoM
				if gain > bestGain {
					bestGain = gain
					bestC = c
				}
			}

			commDegree[bestC] += uv.Degree[v]
			if bestC != cv {
				labels[v] = bestC
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return labels
}

// renumber compresses labels to a dense 0..k-1 range in place, preserving
// the relative order of first appearance, and returns k.
func renumber(labels []uint32) int {
	remap := make(map[uint32]uint32)
	next := uint32(0)
	for i, l := range labels {
		nl, ok := remap[l]
		if !ok {
			nl = next
			remap[l] = nl
			next++
		}
		labels[i] = nl
	}
	return int(next)
}

// aggregate builds the coarser-level UndirectedView whose nodes are the
// numComms communities found by localMove, folding every stub of uv into
// the corresponding inter- or intra-community super-edge.
func aggregate(uv UndirectedView, labels []uint32, numComms int) UndirectedView {
	edges := make([]WeightedEdge, 0, len(labels))
	for v := uint32(0); v < uv.N; v++ {
		cv := labels[v]
		var selfWeight float64
		for _, nb := range uv.Adj[v] {
			if nb.node == v {
				// a self-loop of weight w contributes two stubs of weight w;
				// fold them back into a single super-edge of weight w below.
				selfWeight += nb.weight
				continue
			}
			if nb.node < v {
				continue // each undirected stub pair counted from its lower-indexed endpoint only
			}
			edges = append(edges, WeightedEdge{U: cv, V: labels[nb.node], Weight: nb.weight})
		}
		if selfWeight > 0 {
			edges = append(edges, WeightedEdge{U: cv, V: cv, Weight: selfWeight / 2})
		}
	}
	return buildFromEdges(uint32(numComms), edges)
}
