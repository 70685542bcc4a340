package stream

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ============================================================================
// COMBINATORS
// ============================================================================

// MergeN combines multiple parent streams of the same type into a single
// output stream. It uses a homogeneous fan-in pattern and forwards vectors
// without copying. The output order is non-deterministic.
func MergeN[T any](parents ...Stream[T]) Stream[T] {
	return Stream[T]{
		pipe: func(ctx context.Context) (<-chan *Vector[T], Execution) {
			out := make(chan *Vector[T], ChannelBuffer*len(parents))
			g, gCtx := errgroup.WithContext(ctx)

			parentExecs := make([]Execution, 0, len(parents))
			for _, parent := range parents {
				in, exec := parent.pipe(gCtx)
				parentExecs = append(parentExecs, exec)

				g.Go(func() error {
					return mergeWorker(gCtx, in, out)
				})
			}

			workerExec := executionFromErrGroup(g)
			cleanup := func() { close(out) }
			exec := combineExecutions(workerExec, cleanup, parentExecs...)

			return out, exec
		},
	}
}

// mergeWorker forwards vectors from one input channel to the shared output
// channel, draining its input on cancellation.
func mergeWorker[T any](ctx context.Context, in <-chan *Vector[T], out chan<- *Vector[T]) error {
	for {
		select {
		case batch, ok := <-in:
			if !ok {
				return nil
			}
			select {
			case out <- batch:
				// Ownership transferred (zero-copy).
			case <-ctx.Done():
				batch.Release()
				drain(in)
				return ctx.Err()
			}
		case <-ctx.Done():
			drain(in)
			return ctx.Err()
		}
	}
}
