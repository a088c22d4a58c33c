// Package pattern implements three named, shape-specific anti-pattern
// detectors over a csr.Graph: god classes (excessive outgoing degree),
// circular dependencies (simple cycles of an exact length), and dead code
// (no incoming edges). A generic subgraph-isomorphism matcher is explicitly
// not supported.
//
// The circular-dependency DFS follows the teacher's dfs.DetectCycles idea
// of deduplicating rotations of the same cycle, using the sorted multiset
// of a cycle's node ids as its signature. It narrows enumeration to cycles
// of exactly the requested length k and runs a recursive uint32 DFS bounded
// to depth k, since arbitrary-length simple-cycle enumeration is
// exponential and this engine only ever asks for a fixed k.
package pattern
