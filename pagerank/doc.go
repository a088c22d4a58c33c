// Package pagerank computes the stationary distribution of a csr.Graph
// under teleportation via power iteration.
//
// Precision is single-precision (float32) throughout, matching the storage
// layer's edge weight type. Damping is fixed at 0.85 per the spec; it is
// exposed as an option only so experiments can override it explicitly,
// mirroring the teacher's documented-but-overridable-default convention
// (e.g. dijkstra.WithInfEdgeThreshold defaults to a fixed sentinel but can
// be tuned via a functional option).
package pagerank
