package ingest

import "errors"

// ErrEmptyName is returned when AddCall is given an empty caller or callee
// name.
var ErrEmptyName = errors.New("ingest: empty name")
