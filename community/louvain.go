package community

import "github.com/axgraph/callgraph/csr"

// Result is the outcome of community detection: every node in exactly one
// non-empty community, plus the modularity of that partition over the
// graph's undirected view.
type Result struct {
	Communities [][]uint32
	Count       int
	Modularity  float64
}

// Louvain partitions g's nodes into communities by greedy modularity
// maximization. It builds the undirected view once, hands it to the
// configured Detector (the built-in two-phase Blondel implementation by
// default), and reports the resulting partition's modularity.
//
// An empty graph yields a Result with no communities. A detector is never
// asked to produce empty communities; Louvain drops any label with no
// members before counting.
func Louvain(g *csr.Graph, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	uv := BuildUndirectedView(g)
	if uv.N == 0 {
		return Result{}, nil
	}

	detector := o.detector
	if detector == nil {
		detector = newBlondelDetector(o)
	}

	labels, err := detector.Detect(uv)
	if err != nil {
		return Result{}, err
	}

	groups := make(map[uint32][]uint32)
	for v, c := range labels {
		groups[c] = append(groups[c], uint32(v))
	}

	communities := make([][]uint32, 0, len(groups))
	for _, members := range groups {
		communities = append(communities, members)
	}

	return Result{
		Communities: communities,
		Count:       len(communities),
		Modularity:  Modularity(uv, labels),
	}, nil
}
