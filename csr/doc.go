// Package csr implements the dual forward/reverse Compressed Sparse Row
// adjacency representation that every other package in this module reads.
//
// A Graph is identified by a dense node range {0 … N-1}; appearance of node
// id k implicitly widens the graph to at least k+1 nodes. Edges are directed
// triples (source, target, weight); self-loops and parallel edges are kept
// verbatim, never deduplicated. Two CSR layouts are maintained in lock-step:
// the forward layout (row_off/col_idx/w, keyed by source) and the reverse
// layout (rrow_off/rcol_idx/rw, keyed by target), so that both outgoing and
// incoming neighbor queries are O(degree) with no hashing.
//
// Construction is either a single batch (FromEdges, two linear passes, no
// reallocation) or incremental (AddEdge, O(N+E) per call because every
// subsequent offset shifts by one — acceptable for the batch-then-read usage
// pattern this engine targets; callers building very large graphs edge-by-edge
// should buffer edges and call FromEdges once).
//
// A Graph is read-only once algorithms begin; concurrent mutation while other
// goroutines read is not supported. The embedded sync.RWMutex exists to turn
// that misuse into a detectable race under `go test -race`, not to enable
// concurrent writers.
package csr
