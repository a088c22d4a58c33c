// Package community implements Louvain-style greedy modularity maximization
// over the undirected view of a csr.Graph: alternating phases of local node
// moves and super-node aggregation, iterated until modularity stops
// improving.
//
// No community-detection library appears anywhere in the retrieval pack, so
// the built-in detector is a from-scratch implementation of Blondel et al.,
// following the spec's §9 design note to keep it behind a pluggable
// Detector interface. Its component-labeling bookkeeping (a dense []uint32
// label slice, one entry per node, mutated in place during local moves)
// mirrors the teacher's structure.WeakComponents labeling idiom rather than
// a map-keyed union-find, since node ids here are already a dense range.
package community
