// Package traversal implements level-synchronous BFS over a csr.Graph and
// its reverse-direction counterpart, FindCallers.
//
// Both walk a frontier queue front-to-back while a visited set admits
// never-before-seen neighbors; order within a level is never observable,
// only set membership is contracted. This mirrors the teacher's bfs.BFS
// queue/visited-map shape, generalized from string vertex IDs over
// core.Graph to uint32 node ids over a CSR row slice, and narrowed to the
// single contract this engine needs (reachability / bounded reverse reach)
// rather than the teacher's full depth/parent/hook result.
package traversal
