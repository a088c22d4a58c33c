// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// csr.Graph with non-negative edge weights.
//
// It processes nodes in order of increasing distance using a min-heap
// priority queue (container/heap), relaxing edges with a lazy-decrease-key
// strategy: a shorter distance is pushed as a new heap entry rather than
// updating the existing one in place, and stale entries are discarded when
// popped if the node they name is already finalized. This is the teacher's
// dijkstra.nodePQ shape verbatim, generalized from string vertex IDs to
// uint32 node ids read off CSR adjacency rows instead of core.Graph edge
// lists.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
package dijkstra
