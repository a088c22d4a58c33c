package gpu

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Queue submits compute dispatches and lets the host await their
// completion. Dispatches on a single Queue complete in submission order;
// no ordering is promised across independent queues.
type Queue interface {
	Submit(ctx context.Context, dispatch func()) error
	Wait(ctx context.Context) error
}

// refQueue runs each dispatch synchronously within Submit — the reference
// backend has no real device-side concurrency to overlap with host work —
// so by the time Submit returns, the dispatch's effects are already
// visible; Wait's suspension point still models the map-read-style
// cancellable poll a real backend would require.
type refQueue struct {
	mu     sync.Mutex
	done   chan struct{}
	logger zerolog.Logger
}

func newRefQueue(logger zerolog.Logger) *refQueue {
	done := make(chan struct{})
	close(done)
	return &refQueue{done: done, logger: logger}
}

func (q *refQueue) Submit(ctx context.Context, dispatch func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dispatch()
	q.mu.Lock()
	done := make(chan struct{})
	close(done)
	q.done = done
	q.mu.Unlock()
	return nil
}

func (q *refQueue) Wait(ctx context.Context) error {
	q.mu.Lock()
	done := q.done
	q.mu.Unlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
