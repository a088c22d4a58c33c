// Package callgraph is an embedded, GPU-capable graph engine specialized
// for analyzing program call and dependency graphs.
//
// Its core is a compact, immutable-on-read adjacency representation
// (Compressed Sparse Row, with an accompanying reverse index) and a suite
// of graph algorithms that operate directly on that layout: traversal,
// ranking, shortest paths, structural analysis, community detection, and
// anti-pattern matching. A GPU execution path splits graphs too large for
// device memory into tiles, streams them through a bounded device-resident
// cache, and reuses results across tiles.
//
// Everything is organized under flat, per-concern subpackages:
//
//	csr/       — the CSR adjacency store (C1)
//	traversal/ — BFS and reverse-BFS caller/callee queries (C2)
//	pagerank/  — power-iteration PageRank (C3)
//	dijkstra/  — single-source shortest paths (C4)
//	structure/ — cycle detection, topological sort, weak/strong components (C5)
//	community/ — Louvain community detection (C6)
//	pattern/   — anti-pattern matching: god class, dead code, circular deps (C7)
//	persist/   — the edge/node table persistence boundary (C8)
//	gpu/       — device/buffer/queue abstraction and compute kernels (C9-C11)
//	paging/    — out-of-core tile partitioning and paged BFS (C12)
//	ingest/    — string-keyed staging graph that compiles into a csr.Graph
//	gen/       — synthetic CSR graph generators for tests and benchmarks
//	cmd/callgraph/ — the CLI host shell
package callgraph
