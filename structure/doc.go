// Package structure implements the four structural algorithms that share a
// three-color DFS kernel over a csr.Graph: cycle detection, topological
// sort, weakly connected components, and Kosaraju strongly connected
// components.
//
// The White/Gray/Black state machine and post-order-then-reverse shape are
// carried directly from the teacher's dfs package (dfs.DetectCycles,
// dfs.TopologicalSort), generalized from recursive string-keyed DFS over
// core.Graph neighbor lists to an explicit-stack uint32 DFS over CSR row
// slices — recursion is replaced with an explicit stack so traversal depth
// is bounded only by available memory, not goroutine stack size, which
// matters once node counts reach the tens of thousands (see S6).
package structure
