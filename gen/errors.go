package gen

import "errors"

// ErrTooFewNodes is returned by a generator whose node count requirement is
// not met (Ring needs at least 3; Chain, Star, Complete and RandomSparse
// need at least 1).
var ErrTooFewNodes = errors.New("gen: too few nodes")

// ErrInvalidProbability is returned by RandomSparse when p is outside
// [0, 1].
var ErrInvalidProbability = errors.New("gen: invalid probability")
