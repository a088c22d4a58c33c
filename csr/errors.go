package csr

import "errors"

// ErrNodeOutOfRange is returned by neighbor queries when the requested node
// id is not in [0, N) for the graph's current size.
var ErrNodeOutOfRange = errors.New("csr: node out of range")
