package stream

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"go-funcs/pkg/funcs"
)

// ============================================================================
// TRANSFORMATION OPERATORS
// ============================================================================

// stage wires a parent stream into dop worker goroutines producing a new
// stream. It owns the orchestration every transformer shares: starting the
// parent, running workers under an errgroup, draining the parent when the
// workers stop prematurely, and closing the output once everything is done.
func stage[In, Out any](
	parent Stream[In],
	dop int,
	worker func(ctx context.Context, in <-chan *Vector[In], out chan<- *Vector[Out]) error,
) Stream[Out] {
	return Stream[Out]{
		pipe: func(ctx context.Context) (<-chan *Vector[Out], Execution) {
			in, parentExec := parent.pipe(ctx)
			out := make(chan *Vector[Out], ChannelBuffer)

			g, gCtx := errgroup.WithContext(ctx)
			for i := 0; i < dop; i++ {
				g.Go(func() error {
					return worker(gCtx, in, out)
				})
			}
			workerExec := executionFromErrGroup(g)

			// If the workers stop prematurely (error or cancellation), 'in'
			// must still be drained so the upstream producer can unblock.
			drainerDone := make(chan struct{})
			go func() {
				defer close(drainerDone)
				<-workerExec.Done
				if gCtx.Err() != nil {
					drain(in)
				}
			}()

			cleanup := func() { close(out) }
			exec := combineExecutions(workerExec, cleanup, parentExec, executionFromChan(drainerDone))

			return out, exec
		},
	}
}

// Map applies a mapper to each element of the parent stream, preserving
// order.
func Map[In, Out any](parent Stream[In], mapper funcs.Mapper[In, Out], opts ...Option) Stream[Out] {
	cfg := ApplyOptions(opts...)
	return stage(parent, 1, func(ctx context.Context, in <-chan *Vector[In], out chan<- *Vector[Out]) error {
		pool := newVecPool[Out](cfg.BatchSize)
		return mapBatches(ctx, in, out, pool, func(v In) (Out, error) {
			return mapper(v), nil
		})
	})
}

// Filter keeps only the elements of the parent stream that satisfy the
// predicate, preserving order.
func Filter[T any](parent Stream[T], pred funcs.Predicate[T], opts ...Option) Stream[T] {
	cfg := ApplyOptions(opts...)
	return stage(parent, 1, func(ctx context.Context, in <-chan *Vector[T], out chan<- *Vector[T]) error {
		pool := newVecPool[T](cfg.BatchSize)
		return filterBatches(ctx, in, out, pool, pred)
	})
}

// Distinct drops every element that has already been seen. Element order is
// preserved; the first occurrence wins.
func Distinct[T comparable](parent Stream[T], opts ...Option) Stream[T] {
	return DistinctBy(parent, funcs.Identity[T](), opts...)
}

// DistinctBy drops every element whose key (as extracted by key) has
// already been seen. The seen-set is scoped to a single run of the
// pipeline and grows with the number of distinct keys.
func DistinctBy[T any, K comparable](parent Stream[T], key funcs.Mapper[T, K], opts ...Option) Stream[T] {
	cfg := ApplyOptions(opts...)
	return stage(parent, 1, func(ctx context.Context, in <-chan *Vector[T], out chan<- *Vector[T]) error {
		pool := newVecPool[T](cfg.BatchSize)
		// One stateful predicate per run; the single worker owns it.
		return filterBatches(ctx, in, out, pool, funcs.DistinctBy(key))
	})
}

// ParMap applies a fallible mapper to each element of the parent stream
// concurrently. It is optimized for CPU-bound work; the output order is not
// guaranteed to match the input order. A mapper error fails the pipeline.
func ParMap[In, Out any](
	parent Stream[In],
	dop int,
	mapper func(In) (Out, error),
	opts ...Option,
) Stream[Out] {
	dop = sanitizeDOP(dop)
	cfg := ApplyOptions(opts...)
	return stage(parent, dop, func(ctx context.Context, in <-chan *Vector[In], out chan<- *Vector[Out]) error {
		pool := newVecPool[Out](cfg.BatchSize)
		// Wrap mapper failures only; cancellation must propagate as the raw
		// context sentinel so the terminals can tell the two apart.
		return mapBatches(ctx, in, out, pool, func(v In) (Out, error) {
			mapped, err := mapper(v)
			if err != nil {
				return mapped, fmt.Errorf("ParMap: %w", err)
			}
			return mapped, nil
		})
	})
}

// mapBatches implements batch-level mapping shared by Map and ParMap.
// It consumes vectors from in, maps the elements, and sends the results to
// out. The output vector is pre-sized to the input batch length to avoid
// reallocation.
func mapBatches[In, Out any](
	ctx context.Context,
	in <-chan *Vector[In],
	out chan<- *Vector[Out],
	pool *vecPool[Out],
	mapper func(In) (Out, error),
) error {
	for {
		select {
		case batchIn, ok := <-in:
			if !ok {
				return nil // Input closed normally.
			}

			batchOut := pool.Get()
			if cap(batchOut.Data) < len(batchIn.Data) {
				// Upstream batches can be larger than this stage's own
				// vector size; grow to fit.
				batchOut.Release()
				batchOut = &Vector[Out]{
					Data: make([]Out, len(batchIn.Data)),
					pool: pool,
				}
			} else {
				batchOut.Data = batchOut.Data[:len(batchIn.Data)]
			}

			var mapErr error
			for i, item := range batchIn.Data {
				mapped, err := mapper(item)
				if err != nil {
					mapErr = err
					break
				}
				batchOut.Data[i] = mapped
			}

			batchIn.Release()

			if mapErr != nil {
				// Drainer handles 'in'.
				batchOut.Release()
				return mapErr
			}

			select {
			case out <- batchOut:
			case <-ctx.Done():
				batchOut.Release()
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// filterBatches implements batch-level filtering shared by Filter and
// DistinctBy. Empty output batches are recycled instead of forwarded.
func filterBatches[T any](
	ctx context.Context,
	in <-chan *Vector[T],
	out chan<- *Vector[T],
	pool *vecPool[T],
	pred funcs.Predicate[T],
) error {
	for {
		select {
		case batchIn, ok := <-in:
			if !ok {
				return nil
			}

			batchOut := pool.Get()
			for _, item := range batchIn.Data {
				if pred(item) {
					batchOut.Data = append(batchOut.Data, item)
				}
			}
			batchIn.Release()

			if len(batchOut.Data) == 0 {
				batchOut.Release()
				continue
			}

			select {
			case out <- batchOut:
			case <-ctx.Done():
				batchOut.Release()
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
