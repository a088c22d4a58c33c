package csr

// Outgoing returns a read-only view into col_idx for node v: the targets of
// v's outgoing edges, in insertion order. Fails with ErrNodeOutOfRange when
// v >= N.
func (g *Graph) Outgoing(v uint32) ([]uint32, error) {
	g.muOff.RLock()
	defer g.muOff.RUnlock()
	if v >= g.n {
		return nil, ErrNodeOutOfRange
	}
	return g.colIdx[g.rowOff[v]:g.rowOff[v+1]], nil
}

// Incoming returns a read-only view into rcol_idx for node v: the sources of
// v's incoming edges. Fails with ErrNodeOutOfRange when v >= N.
func (g *Graph) Incoming(v uint32) ([]uint32, error) {
	g.muOff.RLock()
	defer g.muOff.RUnlock()
	if v >= g.n {
		return nil, ErrNodeOutOfRange
	}
	return g.rcolIdx[g.rrowOff[v]:g.rrowOff[v+1]], nil
}

// Adjacency returns the paired (targets, weights) view for node v's outgoing
// edges. Unlike Outgoing/Incoming, out-of-range v is tolerated: it returns
// empty slices rather than an error, for use in hot loops (GPU kernel host
// drivers, pattern matchers) that iterate node ranges derived from a
// possibly-stale N.
func (g *Graph) Adjacency(v uint32) (targets []uint32, weights []float32) {
	g.muOff.RLock()
	defer g.muOff.RUnlock()
	if v >= g.n {
		return nil, nil
	}
	return g.colIdx[g.rowOff[v]:g.rowOff[v+1]], g.w[g.rowOff[v]:g.rowOff[v+1]]
}

// OutDegree returns len(Outgoing(v)), or 0 if v is out of range.
func (g *Graph) OutDegree(v uint32) uint32 {
	g.muOff.RLock()
	defer g.muOff.RUnlock()
	if v >= g.n {
		return 0
	}
	return g.rowOff[v+1] - g.rowOff[v]
}

// InDegree returns len(Incoming(v)), or 0 if v is out of range.
func (g *Graph) InDegree(v uint32) uint32 {
	g.muOff.RLock()
	defer g.muOff.RUnlock()
	if v >= g.n {
		return 0
	}
	return g.rrowOff[v+1] - g.rrowOff[v]
}

// SetName attaches a display name to node v. Names are sparse metadata: they
// are never consulted by algorithms and do not widen the graph.
func (g *Graph) SetName(v uint32, name string) {
	g.muNames.Lock()
	defer g.muNames.Unlock()
	g.names[v] = name
}

// Name returns the name attached to v, if any.
func (g *Graph) Name(v uint32) (string, bool) {
	g.muNames.RLock()
	defer g.muNames.RUnlock()
	name, ok := g.names[v]
	return name, ok
}
