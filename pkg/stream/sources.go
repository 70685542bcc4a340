package stream

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

// ============================================================================
// SOURCE OPERATORS
// ============================================================================

// FromGenerator creates a source stream from a user-provided generator
// function. The generator receives an 'emit' callback to push individual
// items into the stream; emit reports whether the stream still accepts
// items, and the generator should return promptly once it does not (a
// downstream terminal may short-circuit or be cancelled). The generator
// runs in its own goroutine and should return nil on success or an error to
// fail the stream; a generator error propagates unchanged to the consuming
// terminal.
func FromGenerator[T any](gen func(emit func(T) bool) error, opts ...Option) Stream[T] {
	cfg := ApplyOptions(opts...)
	return Stream[T]{
		pipe: func(ctx context.Context) (<-chan *Vector[T], Execution) {
			out := make(chan *Vector[T], ChannelBuffer)
			pool := newVecPool[T](cfg.BatchSize)

			g, gCtx := errgroup.WithContext(ctx)

			g.Go(func() error {
				defer close(out)
				batch := pool.Get()
				var opErr error

				// Emitter function (Continuation-Passing Style).
				emit := func(item T) bool {
					if opErr != nil {
						return false
					}
					if err := gCtx.Err(); err != nil {
						opErr = err
						return false
					}

					batch.Data = append(batch.Data, item)
					if len(batch.Data) == cfg.BatchSize {
						select {
						case out <- batch:
							batch = pool.Get() // Ownership transferred.
						case <-gCtx.Done():
							opErr = gCtx.Err()
							return false
						}
					}
					return true
				}

				genErr := gen(emit)

				if genErr != nil || opErr != nil {
					batch.Release()
					if genErr != nil {
						return genErr
					}
					return opErr
				}

				// Flush remaining items.
				if len(batch.Data) > 0 {
					select {
					case out <- batch:
					case <-gCtx.Done():
						batch.Release()
						return gCtx.Err()
					}
				} else {
					batch.Release()
				}
				return nil
			})

			return out, executionFromErrGroup(g)
		},
	}
}

// FromSlice creates a source stream over a slice. A nil slice is treated
// as empty.
func FromSlice[T any](data []T, opts ...Option) Stream[T] {
	return FromGenerator(func(emit func(T) bool) error {
		for _, v := range data {
			if !emit(v) {
				break
			}
		}
		return nil
	}, opts...)
}

// FromSeq creates a source stream over a standard iterator sequence.
// A nil sequence is treated as empty.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) Stream[T] {
	return FromGenerator(func(emit func(T) bool) error {
		if seq == nil {
			return nil
		}
		for v := range seq {
			if !emit(v) {
				break
			}
		}
		return nil
	}, opts...)
}

// Range creates a stream of integers from start (inclusive) to end
// (exclusive).
func Range(start, end int, opts ...Option) Stream[int] {
	return FromGenerator(func(emit func(int) bool) error {
		for i := start; i < end; i++ {
			if !emit(i) {
				break
			}
		}
		return nil
	}, opts...)
}
