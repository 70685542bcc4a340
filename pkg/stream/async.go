package stream

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go-funcs/pkg/stream/queue"
)

// ============================================================================
// ASYNC BOUNDARY
// ============================================================================

// Async inserts an asynchronous boundary with the given capacity, backed by
// a lock-free SPSC ring buffer. It decouples the rate of the upstream
// producer from the downstream consumer: the producer parks vectors in the
// ring buffer instead of blocking on a channel send to a slow consumer.
// Capacity is rounded up to the next power of two.
func Async[T any](parent Stream[T], capacity int) Stream[T] {
	return Stream[T]{
		pipe: func(ctx context.Context) (<-chan *Vector[T], Execution) {
			in, parentExec := parent.pipe(ctx)
			q := queue.NewRingBuffer[*Vector[T]](capacity)
			out := make(chan *Vector[T], ChannelBuffer)

			g, gCtx := errgroup.WithContext(ctx)

			// Producer side: parent channel -> ring buffer.
			g.Go(func() error {
				defer q.Close()
				for {
					select {
					case vec, ok := <-in:
						if !ok {
							return nil
						}
						for !q.Offer(vec) {
							if gCtx.Err() != nil {
								vec.Release()
								return gCtx.Err()
							}
							runtime.Gosched()
						}
					case <-gCtx.Done():
						return gCtx.Err()
					}
				}
			})

			// Consumer side: ring buffer -> output channel.
			g.Go(func() error {
				for {
					vec, ok := q.SpinPoll(64)
					if !ok {
						if q.IsClosed() {
							return nil
						}
						if gCtx.Err() != nil {
							return gCtx.Err()
						}
						continue
					}
					select {
					case out <- vec:
					case <-gCtx.Done():
						vec.Release()
						return gCtx.Err()
					}
				}
			})

			workerExec := executionFromErrGroup(g)

			drainerDone := make(chan struct{})
			go func() {
				defer close(drainerDone)
				<-workerExec.Done
				if gCtx.Err() != nil {
					drain(in)
					// Vectors stranded in the ring buffer are dropped too.
					for {
						vec, ok := q.Poll()
						if !ok {
							break
						}
						vec.Release()
					}
				}
			}()

			cleanup := func() { close(out) }
			exec := combineExecutions(workerExec, cleanup, parentExec, executionFromChan(drainerDone))

			return out, exec
		},
	}
}
