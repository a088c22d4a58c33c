package ingest

import (
	"sync"

	"github.com/axgraph/callgraph/csr"
)

// Graph accumulates string-keyed call edges and compiles them into a
// csr.Graph. The zero value is not usable; construct with New.
type Graph struct {
	muNames sync.RWMutex
	names   map[string]uint32
	order   []string // name, indexed by id, for the reverse mapping Compile needs

	muEdges sync.Mutex
	edges   []csr.Edge
}

// New returns an empty staging graph.
func New() *Graph {
	return &Graph{names: make(map[string]uint32)}
}

// AddCall records a directed call edge of weight 1 from caller to callee,
// assigning either name its id on first sight. Fails with ErrEmptyName if
// either name is empty.
func (g *Graph) AddCall(caller, callee string) (callerID, calleeID uint32, err error) {
	return g.AddWeightedCall(caller, callee, 1)
}

// AddWeightedCall is AddCall with an explicit edge weight, e.g. a call
// count or an estimated cost.
func (g *Graph) AddWeightedCall(caller, callee string, weight float32) (callerID, calleeID uint32, err error) {
	if caller == "" || callee == "" {
		return 0, 0, ErrEmptyName
	}
	callerID = g.idFor(caller)
	calleeID = g.idFor(callee)

	g.muEdges.Lock()
	g.edges = append(g.edges, csr.Edge{Source: callerID, Target: calleeID, Weight: weight})
	g.muEdges.Unlock()

	return callerID, calleeID, nil
}

// idFor returns name's id, assigning the next incrementing id if name has
// not been seen before.
func (g *Graph) idFor(name string) uint32 {
	g.muNames.Lock()
	defer g.muNames.Unlock()
	if id, ok := g.names[name]; ok {
		return id
	}
	id := uint32(len(g.order))
	g.names[name] = id
	g.order = append(g.order, name)
	return id
}

// NodeID returns the id assigned to name, if it has been seen.
func (g *Graph) NodeID(name string) (uint32, bool) {
	g.muNames.RLock()
	defer g.muNames.RUnlock()
	id, ok := g.names[name]
	return id, ok
}

// Compile builds a *csr.Graph from the accumulated edges and attaches every
// assigned name to its node id. Ids are assigned only by AddCall and
// AddWeightedCall, which always record an edge, and NodeID never assigns
// one; EnsureN(len(order)) after FromEdges keeps N at least the number of
// assigned names regardless.
func (g *Graph) Compile() *csr.Graph {
	g.muEdges.Lock()
	edges := append([]csr.Edge(nil), g.edges...)
	g.muEdges.Unlock()

	compiled := csr.FromEdges(edges)

	g.muNames.RLock()
	defer g.muNames.RUnlock()
	if n := uint32(len(g.order)); n > compiled.N() {
		compiled.EnsureN(n)
	}
	for name, id := range g.names {
		compiled.SetName(id, name)
	}
	return compiled
}
