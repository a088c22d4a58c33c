package dijkstra

import "errors"

// ErrNegativeWeight is returned by a fast pre-scan when any edge in the
// graph carries a negative weight; Dijkstra requires non-negative weights.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

// ErrNoPath is returned by DijkstraPath when target is unreachable from
// source.
var ErrNoPath = errors.New("dijkstra: no path to target")
