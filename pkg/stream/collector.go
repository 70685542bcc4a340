package stream

import (
	"context"

	"go-funcs/pkg/funcs"
)

// ============================================================================
// COLLECTOR LAYER
// ============================================================================

// Collector is a reusable specification of how to fold a stream into a
// result container: Supply creates a fresh accumulator, Accumulate folds
// one element into it, Combine merges two partial accumulators, and Finish
// transforms the final accumulator into the result.
//
// Collect runs collectors sequentially, so Combine is not invoked on the
// hot path; it exists for callers merging partial results they built
// themselves (see PartitionCollector for the ordering caveat).
type Collector[T, A, R any] struct {
	Supply     funcs.Supplier[A]
	Accumulate func(A, T) A
	Combine    func(A, A) A
	Finish     funcs.Mapper[A, R]
}

// Collect consumes the stream with the given collector: a sequential fold
// through Accumulate, then a single Finish.
func Collect[T, A, R any](ctx context.Context, s Stream[T], col Collector[T, A, R]) (R, error) {
	acc, err := Reduce(ctx, s, col.Supply(), col.Accumulate)
	if err != nil {
		var zero R
		return zero, err
	}
	return col.Finish(acc), nil
}

// ToSliceCollector accumulates all elements into a slice in arrival order.
func ToSliceCollector[T any]() Collector[T, []T, []T] {
	return Collector[T, []T, []T]{
		Supply:     func() []T { return nil },
		Accumulate: func(acc []T, item T) []T { return append(acc, item) },
		Combine:    func(a, b []T) []T { return append(a, b...) },
		Finish:     funcs.Identity[[]T](),
	}
}

// CountingCollector counts elements.
func CountingCollector[T any]() Collector[T, int, int] {
	return Collector[T, int, int]{
		Supply:     func() int { return 0 },
		Accumulate: func(acc int, _ T) int { return acc + 1 },
		Combine:    func(a, b int) int { return a + b },
		Finish:     funcs.Identity[int](),
	}
}

// GroupingCollector groups elements by an extracted key, preserving the
// arrival order within each group.
func GroupingCollector[T any, K comparable](key funcs.Mapper[T, K]) Collector[T, map[K][]T, map[K][]T] {
	return Collector[T, map[K][]T, map[K][]T]{
		Supply: func() map[K][]T { return make(map[K][]T) },
		Accumulate: func(acc map[K][]T, item T) map[K][]T {
			k := key(item)
			acc[k] = append(acc[k], item)
			return acc
		},
		Combine: func(a, b map[K][]T) map[K][]T {
			for k, vs := range b {
				a[k] = append(a[k], vs...)
			}
			return a
		},
		Finish: funcs.Identity[map[K][]T](),
	}
}
