package traversal

import "context"

// Option configures traversal behavior via functional arguments, following
// the teacher's bfs.Option convention.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a context used for cooperative cancellation: BFS checks
// it once per dequeued node, FindCallers once per level.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
