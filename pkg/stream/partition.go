package stream

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"go-funcs/pkg/funcs"
)

// ============================================================================
// PARTITIONING COLLECTOR
// ============================================================================

// ErrInvalidPartitionSize is returned when a partitioning operation is
// configured with a non-positive chunk size. The failure happens at call
// time, before any element is consumed.
var ErrInvalidPartitionSize = errors.New("partition size must be positive")

// ChunkAccumulator is the partial result of the partitioning collector: an
// ordered list of chunks where every chunk except the last is full.
type ChunkAccumulator[T any] struct {
	size   int
	chunks [][]T
}

// Chunks returns the accumulated chunk list.
func (a *ChunkAccumulator[T]) Chunks() [][]T {
	return a.chunks
}

func (a *ChunkAccumulator[T]) add(item T) {
	n := len(a.chunks)
	if n == 0 || len(a.chunks[n-1]) == a.size {
		a.chunks = append(a.chunks, make([]T, 0, a.size))
		n++
	}
	a.chunks[n-1] = append(a.chunks[n-1], item)
}

// PartitionCollector builds a collector that groups elements into chunks of
// exactly size elements, in arrival order, the last chunk possibly shorter.
// Concatenating the resulting chunks reproduces the input exactly.
//
// The collector's Combine concatenates two partial chunk lists and is
// order-sensitive, not commutative: it only preserves the "all chunks but
// the last are full" invariant when the left partial ends on a chunk
// boundary. Partials built from parallel, non-aligned sub-ranges must be
// combined in original order and re-chunked afterwards with Rechunk.
// Collect itself folds sequentially and never hits this hazard.
func PartitionCollector[T any](size int) (Collector[T, *ChunkAccumulator[T], [][]T], error) {
	if size <= 0 {
		return Collector[T, *ChunkAccumulator[T], [][]T]{}, fmt.Errorf("%w: %d", ErrInvalidPartitionSize, size)
	}
	return Collector[T, *ChunkAccumulator[T], [][]T]{
		Supply: func() *ChunkAccumulator[T] {
			return &ChunkAccumulator[T]{size: size}
		},
		Accumulate: func(acc *ChunkAccumulator[T], item T) *ChunkAccumulator[T] {
			acc.add(item)
			return acc
		},
		Combine: func(a, b *ChunkAccumulator[T]) *ChunkAccumulator[T] {
			a.chunks = append(a.chunks, b.chunks...)
			return a
		},
		Finish: func(acc *ChunkAccumulator[T]) [][]T {
			return acc.chunks
		},
	}, nil
}

// Partition consumes the stream and groups its elements into chunks of
// exactly size elements in arrival order; the last chunk holds whatever
// remains (1 to size elements). An empty stream yields no chunks. A
// non-positive size fails with ErrInvalidPartitionSize before the pipeline
// is started.
func Partition[T any](ctx context.Context, s Stream[T], size int) ([][]T, error) {
	col, err := PartitionCollector[T](size)
	if err != nil {
		return nil, err
	}
	return Collect(ctx, s, col)
}

// PartitionInto partitions the stream and applies a finishing transform to
// the chunk list, producing an arbitrary result container (for example,
// packing chunks of numeric values into fixed-size arrays).
func PartitionInto[T, R any](
	ctx context.Context,
	s Stream[T],
	size int,
	finish funcs.Mapper[[][]T, R],
) (R, error) {
	chunks, err := Partition(ctx, s, size)
	if err != nil {
		var zero R
		return zero, err
	}
	return finish(chunks), nil
}

// PartitionSeq returns a lazily-produced view of the stream's chunks: the
// pipeline is only driven while the sequence is iterated, and stops early
// when iteration does. Each full chunk is yielded as soon as it is complete;
// a trailing partial chunk is yielded after clean exhaustion.
//
// The sequence yields (chunk, nil) pairs; if the pipeline fails, the final
// pair is (nil, err). A non-positive size fails immediately, before the
// sequence is constructed.
func PartitionSeq[T any](ctx context.Context, s Stream[T], size int) (iter.Seq2[[]T, error], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPartitionSize, size)
	}

	return func(yield func([]T, error) bool) {
		execCtx, cancelExec := context.WithCancel(ctx)
		defer cancelExec()

		dataCh, exec := s.pipe(execCtx)
		chunk := make([]T, 0, size)
		stopped := false

	loop:
		for {
			select {
			case batch, ok := <-dataCh:
				if !ok {
					break loop
				}
				for _, item := range batch.Data {
					chunk = append(chunk, item)
					if len(chunk) == size {
						if !yield(chunk, nil) {
							stopped = true
							break
						}
						chunk = make([]T, 0, size)
					}
				}
				batch.Release()
				if stopped {
					cancelExec()
					drain(dataCh)
					break loop
				}
			case <-ctx.Done():
				break loop
			}
		}

		<-exec.Done
		if stopped {
			return
		}

		if err := exec.Err(); err != nil {
			if ctx.Err() == nil || (err != context.Canceled && err != context.DeadlineExceeded) {
				yield(nil, err)
				return
			}
		}
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}

		if len(chunk) > 0 {
			yield(chunk, nil)
		}
	}, nil
}

// Rechunk flattens a chunk list and re-partitions it to the given size,
// restoring the "all chunks but the last are full" invariant after an
// unaligned Combine of parallel partial results. Relative element order is
// preserved.
func Rechunk[T any](chunks [][]T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPartitionSize, size)
	}
	acc := &ChunkAccumulator[T]{size: size}
	for _, chunk := range chunks {
		for _, item := range chunk {
			acc.add(item)
		}
	}
	return acc.chunks, nil
}
