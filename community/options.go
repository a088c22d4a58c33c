package community

// Option configures Louvain. The zero options value is never used directly;
// construct via defaultOptions and apply Options over it.
type Option func(*options)

type options struct {
	maxPasses int
	maxLevels int
	detector  Detector
}

func defaultOptions() options {
	return options{maxPasses: 100, maxLevels: 20}
}

// WithMaxPasses bounds the local-move sweeps per level (default 100).
func WithMaxPasses(n int) Option {
	return func(o *options) { o.maxPasses = n }
}

// WithMaxLevels bounds the number of aggregation levels (default 20).
func WithMaxLevels(n int) Option {
	return func(o *options) { o.maxLevels = n }
}

// WithDetector overrides the built-in Louvain detector with a caller-
// supplied one, e.g. a deterministic oracle in tests.
func WithDetector(d Detector) Option {
	return func(o *options) { o.detector = d }
}
