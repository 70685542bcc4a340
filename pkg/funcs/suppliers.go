package funcs

// ============================================================================
// SUPPLIER FACTORIES
// ============================================================================

// Of returns a supplier that always produces v.
func Of[T any](v T) Supplier[T] {
	return func() T { return v }
}

// Map transforms the supplier's output.
func (s Supplier[T]) Map(m Mapper[T, T]) Supplier[T] {
	return func() T { return m(s()) }
}

// ============================================================================
// LAZY MEMOIZATION
// ============================================================================

// Lazy wraps a supplier so that it is invoked at most once. The first call
// computes and caches the result; every later call returns the cached value
// without re-invoking sup, even if sup would now produce something else.
//
// If sup panics, nothing is cached and the next call invokes it again.
//
// The returned supplier is not safe for concurrent first access: two
// goroutines racing on the first call may each invoke sup. Callers needing
// that guarantee must synchronize externally.
func Lazy[T any](sup Supplier[T]) Supplier[T] {
	var (
		cached   T
		computed bool
	)
	return func() T {
		if !computed {
			cached = sup()
			computed = true
		}
		return cached
	}
}

// LazyErr wraps a fallible supplier so that its first success is computed
// once and cached. A failure is never cached: the error propagates to the
// caller, the computed flag stays unset, and the next call invokes sup
// again. Once a call succeeds, every later call returns the cached value
// and a nil error without re-invoking sup.
//
// Like Lazy, not safe for concurrent first access.
func LazyErr[T any](sup ErrSupplier[T]) ErrSupplier[T] {
	var (
		cached   T
		computed bool
	)
	return func() (T, error) {
		if computed {
			return cached, nil
		}
		v, err := sup()
		if err != nil {
			return v, err
		}
		cached = v
		computed = true
		return cached, nil
	}
}
