package stream

import (
	"context"

	"go-funcs/pkg/funcs"
)

// ============================================================================
// TERMINALS (SINKS / FOLDS)
// ============================================================================

// Reduce consumes the entire stream and folds the elements into a single
// accumulator. It blocks until the stream is exhausted, the context is
// cancelled, or the pipeline fails.
func Reduce[T, Acc any](
	ctx context.Context,
	s Stream[T],
	init Acc,
	fn func(Acc, T) Acc,
) (Acc, error) {
	// A cancellable sub-context guarantees pipeline shutdown if Reduce
	// returns prematurely.
	execCtx, cancelExec := context.WithCancel(ctx)
	defer cancelExec()

	dataCh, exec := s.pipe(execCtx)
	acc := init

loop:
	for {
		select {
		case batch, ok := <-dataCh:
			if !ok {
				break loop // Data stream finished.
			}
			// Release the batch even if fn panics.
			func() {
				defer batch.Release()
				for _, item := range batch.Data {
					acc = fn(acc, item)
				}
			}()
		case <-ctx.Done():
			break loop
		}
	}

	// Wait for the pipeline to fully stop, then surface its error.
	<-exec.Done
	if err := exec.Err(); err != nil {
		// An internal failure wins over the external cancellation signal
		// when both occurred.
		if ctx.Err() == nil || (err != context.Canceled && err != context.DeadlineExceeded) {
			return acc, err
		}
	}

	return acc, ctx.Err()
}

// ToSlice materializes the stream into a slice in arrival order.
func ToSlice[T any](ctx context.Context, s Stream[T]) ([]T, error) {
	return Reduce(ctx, s, []T(nil), func(acc []T, item T) []T {
		return append(acc, item)
	})
}

// Count consumes the stream and returns the number of elements.
func Count[T any](ctx context.Context, s Stream[T]) (int, error) {
	return Reduce(ctx, s, 0, func(acc int, _ T) int {
		return acc + 1
	})
}

// ForEach invokes the consumer for every element in arrival order.
func ForEach[T any](ctx context.Context, s Stream[T], consume funcs.Consumer[T]) error {
	_, err := Reduce(ctx, s, struct{}{}, func(acc struct{}, item T) struct{} {
		consume(item)
		return acc
	})
	return err
}

// ============================================================================
// SHORT-CIRCUIT TERMINALS
// ============================================================================

// AnyMatch reports whether at least one element satisfies the predicate.
// It short-circuits: the pipeline is cancelled as soon as a match is found.
func AnyMatch[T any](ctx context.Context, s Stream[T], pred funcs.Predicate[T]) (bool, error) {
	match, _, err := scanFirst(ctx, s, pred)
	return match, err
}

// AllMatch reports whether every element satisfies the predicate. It
// short-circuits on the first violation. An empty stream matches.
func AllMatch[T any](ctx context.Context, s Stream[T], pred funcs.Predicate[T]) (bool, error) {
	violated, _, err := scanFirst(ctx, s, pred.Not())
	if err != nil {
		return false, err
	}
	return !violated, nil
}

// NoneMatch reports whether no element satisfies the predicate. It
// short-circuits on the first match.
func NoneMatch[T any](ctx context.Context, s Stream[T], pred funcs.Predicate[T]) (bool, error) {
	matched, _, err := scanFirst(ctx, s, pred)
	if err != nil {
		return false, err
	}
	return !matched, nil
}

// FindFirst scans the stream in arrival order and returns the first element
// matching the descriptor's condition. When the stream is exhausted without
// a match, the descriptor's default is returned instead: the literal value,
// or the result of invoking the deferred supplier exactly once. With
// unordered upstream stages (ParMap, MergeN), "first" means first
// encountered.
func FindFirst[T any](ctx context.Context, s Stream[T], desc funcs.Found[T]) (T, error) {
	found, item, err := scanFirst(ctx, s, desc.Match)
	if err != nil {
		var zero T
		return zero, err
	}
	if !found {
		return desc.Default(), nil
	}
	return item, nil
}

// scanFirst consumes the stream until an element satisfies pred, then
// cancels the pipeline and drains the remainder. It is the shared engine of
// the short-circuit terminals.
func scanFirst[T any](ctx context.Context, s Stream[T], pred funcs.Predicate[T]) (bool, T, error) {
	execCtx, cancelExec := context.WithCancel(ctx)
	defer cancelExec()

	dataCh, exec := s.pipe(execCtx)

	var (
		found bool
		match T
	)

loop:
	for {
		select {
		case batch, ok := <-dataCh:
			if !ok {
				break loop
			}
			for _, item := range batch.Data {
				if pred(item) {
					found = true
					match = item
					break
				}
			}
			batch.Release()
			if found {
				cancelExec()
				drain(dataCh)
				break loop
			}
		case <-ctx.Done():
			break loop
		}
	}

	<-exec.Done

	if found {
		// The only cancellation in flight is the one scanFirst issued.
		if ctx.Err() != nil {
			return true, match, ctx.Err()
		}
		return true, match, nil
	}

	var zero T
	if err := exec.Err(); err != nil {
		if ctx.Err() == nil || (err != context.Canceled && err != context.DeadlineExceeded) {
			return false, zero, err
		}
	}
	return false, zero, ctx.Err()
}
