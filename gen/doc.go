// Package gen builds synthetic CSR graphs for tests and benchmarks: rings,
// stars, complete graphs, and Erdős–Rényi-style random sparse graphs.
// Ported from the teacher's builder package constructors (Cycle, Star,
// Complete, RandomSparse), adapted to emit a *csr.Graph directly via
// csr.FromEdges rather than building through a mutable core.Graph one
// AddVertex/AddEdge call at a time, since CSR graphs are batch-built from a
// precomputed edge list.
package gen
