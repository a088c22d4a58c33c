package community

// Modularity computes Newman-Girvan modularity of the given label
// assignment over undirected view uv:
//
//	Q = sum_c [ internal(c) / (2m) - (degree(c) / (2m))^2 ]
//
// where internal(c) is the sum of stub weights whose both endpoints lie in
// community c (so every non-self-loop internal edge is counted twice, once
// from each endpoint, matching the doubled-degree convention of
// UndirectedView) and degree(c) is the sum of Degree[v] over v in c. An
// edgeless view has Q defined as 0.
func Modularity(uv UndirectedView, labels []uint32) float64 {
	twoM := 2 * uv.TotalWeight
	if twoM == 0 {
		return 0
	}

	internal := make(map[uint32]float64)
	commDegree := make(map[uint32]float64)

	for v := uint32(0); v < uv.N; v++ {
		c := labels[v]
		commDegree[c] += uv.Degree[v]
		for _, nb := range uv.Adj[v] {
			if labels[nb.node] == c {
				internal[c] += nb.weight
			}
		}
	}

	var q float64
	for c, deg := range commDegree {
		frac := deg / twoM
		q += internal[c]/twoM - frac*frac
	}
	return q
}
