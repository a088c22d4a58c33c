package persist

import "github.com/axgraph/callgraph/csr"

// DumpGraph flattens g into EdgeRow/NodeRow tables, in forward-CSR
// traversal order, and hands them to w. Names absent from g's sparse name
// map are synthesized as "node_<id>" in the written NodeRow only.
func DumpGraph(g *csr.Graph, w TableWriter) error {
	n := g.N()
	rowOff, colIdx, weights := g.View()

	edgeRows := make([]EdgeRow, 0, len(colIdx))
	for u := uint32(0); u < n; u++ {
		for i := rowOff[u]; i < rowOff[u+1]; i++ {
			edgeRows = append(edgeRows, EdgeRow{Source: u, Target: colIdx[i], Weight: weights[i]})
		}
	}
	if err := w.WriteEdges(edgeRows); err != nil {
		return err
	}

	nodeRows := make([]NodeRow, n)
	for v := uint32(0); v < n; v++ {
		name, ok := g.Name(v)
		if !ok {
			name = syntheticName(v)
		}
		nodeRows[v] = NodeRow{NodeID: v, Name: name}
	}
	return w.WriteNodes(nodeRows)
}

// LoadGraph rebuilds a csr.Graph from r's tables. NodeRow entries whose
// name matches the synthetic "node_<id>" pattern for their own id are
// treated as originally unnamed and are not written back into the rebuilt
// graph's name map, so unnamed nodes stay unnamed across a dump/load round
// trip. A node explicitly named "node_<id>" with its own id also comes back
// unnamed: the tables do not distinguish it from a synthesized name.
func LoadGraph(r TableReader) (*csr.Graph, error) {
	edgeRows, err := r.ReadEdges()
	if err != nil {
		return nil, err
	}
	edges := make([]csr.Edge, len(edgeRows))
	for i, row := range edgeRows {
		edges[i] = csr.Edge{Source: row.Source, Target: row.Target, Weight: row.Weight}
	}
	g := csr.FromEdges(edges)

	nodeRows, err := r.ReadNodes()
	if err != nil {
		return nil, err
	}
	if n := uint32(len(nodeRows)); n > g.N() {
		g.EnsureN(n)
	}
	for _, row := range nodeRows {
		if row.Name == syntheticName(row.NodeID) {
			continue
		}
		g.SetName(row.NodeID, row.Name)
	}
	return g, nil
}

func syntheticName(id uint32) string {
	return "node_" + uitoa(id)
}

func uitoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
