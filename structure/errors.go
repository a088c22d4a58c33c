package structure

import "errors"

// ErrCycleDetected is returned by Toposort when the graph contains a cycle
// and therefore has no topological ordering.
var ErrCycleDetected = errors.New("structure: cycle detected")

// color mirrors the teacher's dfs.White/Gray/Black visitation state
// machine: Unvisited -> InStack -> Finished.
type color int

const (
	unvisited color = iota
	inStack
	finished
)
