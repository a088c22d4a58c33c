package gpu

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Infinity is the sentinel distance for unreached nodes, matching the
// device-side "initialized to ∞" contract.
const Infinity uint32 = ^uint32(0)

// BFSWave runs level-synchronous BFS over an uploaded graph, dispatching
// one simulated thread per node per level via a bounded worker pool sized
// to runtime.GOMAXPROCS(0) in place of a 256-wide hardware workgroup. A
// level terminates when no thread updates a neighbor's distance; the loop
// is capped at buf.N levels. The distances buffer is mapped back to the
// host as the final step.
func BFSWave(ctx context.Context, dev Device, buf CSRBuffers, source uint32) ([]uint32, error) {
	rowOffBytes, err := buf.RowOff.MapRead(ctx)
	if err != nil {
		return nil, err
	}
	colIdxBytes, err := buf.ColIdx.MapRead(ctx)
	if err != nil {
		return nil, err
	}
	rowOff := decodeU32(rowOffBytes)
	colIdx := decodeU32(colIdxBytes)

	n := buf.N
	dist := make([]atomic.Uint32, n)
	for i := range dist {
		dist[i].Store(Infinity)
	}
	if source < n {
		dist[source].Store(0)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	q := dev.Queue()

	for level := uint32(0); level < n; level++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var updated atomic.Bool
		err := q.Submit(ctx, func() {
			dispatchPerNode(n, workers, func(v uint32) {
				if dist[v].Load() != level {
					return
				}
				start, end := rowOff[v], rowOff[v+1]
				for _, nb := range colIdx[start:end] {
					next := level + 1
					for {
						cur := dist[nb].Load()
						if cur <= next {
							break
						}
						if dist[nb].CompareAndSwap(cur, next) {
							updated.Store(true)
							break
						}
					}
				}
			})
		})
		if err != nil {
			return nil, err
		}
		if err := q.Wait(ctx); err != nil {
			return nil, err
		}
		if !updated.Load() {
			break
		}
	}

	result := make([]uint32, n)
	for i := range result {
		result[i] = dist[i].Load()
	}
	return result, nil
}

// dispatchPerNode fans work for nodes [0, n) out across a bounded worker
// pool, modeling the contract of one compute-shader thread per node
// without requiring workgroup-width hardware lockstep.
func dispatchPerNode(n uint32, workers int, fn func(v uint32)) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for v := uint32(0); v < n; v++ {
		v := v
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			fn(v)
		}()
	}
	wg.Wait()
}
