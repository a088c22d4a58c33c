package pattern

import (
	"sort"

	"github.com/axgraph/callgraph/csr"
)

// GodClass yields one match per node whose outgoing degree is at least
// minCallees, mapping pattern node 0 to that node. Severity: High.
func GodClass(g *csr.Graph, minCallees int) []Match {
	var matches []Match
	n := g.N()
	for v := uint32(0); v < n; v++ {
		if int(g.OutDegree(v)) >= minCallees {
			matches = append(matches, Match{
				NodeMapping: map[int]uint32{0: v},
				Name:        NameGodClass,
				Severity:    High,
			})
		}
	}
	return matches
}

// DeadCode yields one match per node with no incoming edges. Severity:
// Medium.
func DeadCode(g *csr.Graph) []Match {
	var matches []Match
	n := g.N()
	for v := uint32(0); v < n; v++ {
		if g.InDegree(v) == 0 {
			matches = append(matches, Match{
				NodeMapping: map[int]uint32{0: v},
				Name:        NameDeadCode,
				Severity:    Medium,
			})
		}
	}
	return matches
}

// CircularDependency enumerates all simple directed cycles of exactly
// length k. It runs a depth-bounded recursive DFS from every starting node,
// maintaining a current path and an in-path membership set of size at most
// k; when the path reaches length k and the current node has a forward
// edge back to the path's first node, it emits the cycle. Cycles are
// deduplicated by the sorted multiset of their node ids, so rotations count
// once. Severity: Critical.
func CircularDependency(g *csr.Graph, k int) []Match {
	if k <= 0 {
		return nil
	}
	n := g.N()
	seen := make(map[string]struct{})
	var matches []Match

	for start := uint32(0); start < n; start++ {
		inPath := make(map[uint32]bool, k)
		path := make([]uint32, 0, k)
		walkCycles(g, start, start, k, &path, inPath, seen, &matches)
	}

	return matches
}

// walkCycles is the explicit recursive-by-slice DFS used by
// CircularDependency. Depth is bounded by k, so recursion here is safe
// (unlike the unbounded structural DFS kernel, which uses an explicit
// stack for arbitrarily deep graphs).
func walkCycles(
	g *csr.Graph,
	origin, cur uint32,
	k int,
	path *[]uint32,
	inPath map[uint32]bool,
	seen map[string]struct{},
	matches *[]Match,
) {
	*path = append(*path, cur)
	inPath[cur] = true

	if len(*path) == k {
		out, _ := g.Outgoing(cur)
		for _, nbr := range out {
			if nbr == origin {
				recordCycle(*path, seen, matches)
			}
		}
	} else {
		out, _ := g.Outgoing(cur)
		for _, nbr := range out {
			if !inPath[nbr] {
				walkCycles(g, origin, nbr, k, path, inPath, seen, matches)
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	delete(inPath, cur)
}

// recordCycle canonicalizes a length-k path into a sorted-multiset
// signature so rotations of the same cycle are recorded only once, then
// appends a Match keyed by the path's own node order.
func recordCycle(path []uint32, seen map[string]struct{}, matches *[]Match) {
	sig := signature(path)
	if _, dup := seen[sig]; dup {
		return
	}
	seen[sig] = struct{}{}

	mapping := make(map[int]uint32, len(path))
	for i, v := range path {
		mapping[i] = v
	}
	*matches = append(*matches, Match{
		NodeMapping: mapping,
		Name:        NameCircularDependency,
		Severity:    Critical,
	})
}

func signature(path []uint32) string {
	sorted := append([]uint32(nil), path...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	buf := make([]byte, 0, len(sorted)*11)
	for _, v := range sorted {
		buf = appendUint32(buf, v)
		buf = append(buf, ',')
	}
	return string(buf)
}

func appendUint32(buf []byte, v uint32) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
