package csr

// FromEdges builds a Graph from a batch of edges in two linear passes:
// (1) bucket-count out-degree and in-degree per node, prefix-sum into the
// forward and reverse offset arrays; (2) fill in col_idx/w and rcol_idx/rw
// using per-row write cursors that advance on each placement.
//
// N is computed as max(endpoint)+1 over all edges. Empty input yields an
// empty graph. Complexity: O(N+E), no hashing.
func FromEdges(edges []Edge) *Graph {
	g := New()
	if len(edges) == 0 {
		return g
	}

	var maxID uint32
	for _, e := range edges {
		if e.Source > maxID {
			maxID = e.Source
		}
		if e.Target > maxID {
			maxID = e.Target
		}
	}
	n := maxID + 1
	eCount := uint32(len(edges))

	outDeg := make([]uint32, n)
	inDeg := make([]uint32, n)
	for _, e := range edges {
		outDeg[e.Source]++
		inDeg[e.Target]++
	}

	rowOff := make([]uint32, n+1)
	rrowOff := make([]uint32, n+1)
	for i := uint32(0); i < n; i++ {
		rowOff[i+1] = rowOff[i] + outDeg[i]
		rrowOff[i+1] = rrowOff[i] + inDeg[i]
	}

	colIdx := make([]uint32, eCount)
	w := make([]float32, eCount)
	rcolIdx := make([]uint32, eCount)
	rw := make([]float32, eCount)

	// per-row write cursors, seeded from the row start
	fwdCursor := make([]uint32, n)
	copy(fwdCursor, rowOff[:n])
	revCursor := make([]uint32, n)
	copy(revCursor, rrowOff[:n])

	for _, e := range edges {
		fp := fwdCursor[e.Source]
		colIdx[fp] = e.Target
		w[fp] = e.Weight
		fwdCursor[e.Source]++

		rp := revCursor[e.Target]
		rcolIdx[rp] = e.Source
		rw[rp] = e.Weight
		revCursor[e.Target]++
	}

	g.n = n
	g.e = eCount
	g.rowOff = rowOff
	g.colIdx = colIdx
	g.w = w
	g.rrowOff = rrowOff
	g.rcolIdx = rcolIdx
	g.rw = rw

	return g
}

// AddEdge widens N to max(N, max(u,v)+1) if needed (extending both offset
// arrays by repeating their previous last value), then inserts a forward
// entry at the end of u's row and a reverse entry at the end of v's row,
// shifting all subsequent offsets in both arrays by one.
//
// Row-internal ordering is insertion order, preserved through serialization —
// this is a documented contract, not an implementation accident.
// Complexity: O(N+E) per call, dominated by the offset shift.
func (g *Graph) AddEdge(u, v uint32, weight float32) {
	g.muOff.Lock()
	defer g.muOff.Unlock()

	need := u
	if v > need {
		need = v
	}
	g.widenLocked(need + 1)

	g.insertForwardLocked(u, v, weight)
	g.insertReverseLocked(v, u, weight)
	g.e++
	g.generation++
}

// EnsureN widens the graph to at least n nodes without adding any edges.
// It is a no-op if the graph already has n or more nodes. Used by callers
// reconstructing a graph from a source that records isolated trailing
// nodes (e.g. persist.LoadGraph rebuilding from a name table) separately
// from the edge list.
func (g *Graph) EnsureN(n uint32) {
	g.muOff.Lock()
	defer g.muOff.Unlock()
	g.widenLocked(n)
}

// widenLocked grows N to newN, repeating the last offset value for every
// newly created row in both offset arrays. Caller holds muOff.
func (g *Graph) widenLocked(newN uint32) {
	if newN <= g.n {
		return
	}
	lastFwd := g.rowOff[len(g.rowOff)-1]
	lastRev := g.rrowOff[len(g.rrowOff)-1]
	for g.n < newN {
		g.rowOff = append(g.rowOff, lastFwd)
		g.rrowOff = append(g.rrowOff, lastRev)
		g.n++
	}
}

// insertForwardLocked places (src->dst, weight) at the end of src's forward
// row and shifts every later offset by one. Caller holds muOff.
func (g *Graph) insertForwardLocked(src, dst uint32, weight float32) {
	pos := g.rowOff[src+1]
	g.colIdx = insertAtU32(g.colIdx, pos, dst)
	g.w = insertAtF32(g.w, pos, weight)
	for i := src + 1; i < uint32(len(g.rowOff)); i++ {
		g.rowOff[i]++
	}
}

// insertReverseLocked mirrors insertForwardLocked for the reverse CSR.
func (g *Graph) insertReverseLocked(dst, src uint32, weight float32) {
	pos := g.rrowOff[dst+1]
	g.rcolIdx = insertAtU32(g.rcolIdx, pos, src)
	g.rw = insertAtF32(g.rw, pos, weight)
	for i := dst + 1; i < uint32(len(g.rrowOff)); i++ {
		g.rrowOff[i]++
	}
}

func insertAtU32(s []uint32, pos uint32, v uint32) []uint32 {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:len(s)-1])
	s[pos] = v
	return s
}

func insertAtF32(s []float32, pos uint32, v float32) []float32 {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:len(s)-1])
	s[pos] = v
	return s
}
