package pagerank

// DefaultDamping is the fixed damping factor d from the spec.
const DefaultDamping = 0.85

// Option configures PageRank iteration limits and the damping factor.
type Option func(*options)

type options struct {
	maxIter int
	tol     float32
	damping float32
}

func defaultOptions() options {
	return options{
		maxIter: 100,
		tol:     1e-6,
		damping: DefaultDamping,
	}
}

// WithMaxIter bounds the number of power-iteration rounds.
func WithMaxIter(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIter = n
		}
	}
}

// WithTolerance sets the L1-difference convergence threshold.
func WithTolerance(tol float32) Option {
	return func(o *options) {
		if tol > 0 {
			o.tol = tol
		}
	}
}

// WithDamping overrides the damping factor. Values other than 0.85 are
// non-standard PageRank and documented here as such; use only for
// experimentation.
func WithDamping(d float32) Option {
	return func(o *options) {
		if d >= 0 && d <= 1 {
			o.damping = d
		}
	}
}
