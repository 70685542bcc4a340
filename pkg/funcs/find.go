package funcs

// ============================================================================
// FIND-WITH-DEFAULT DESCRIPTOR
// ============================================================================

// Found pairs a matching condition with a fallback: either a literal default
// value or a deferred default supplier. It parameterizes "find the first (or
// any) element satisfying a condition, else the fallback" operations without
// carrying any search semantics of its own; the consuming search decides
// iteration order.
//
// A Found is immutable after construction.
type Found[T any] struct {
	match    Predicate[T]
	value    T
	deferred Supplier[T]
}

// FindOr builds a descriptor with a literal default value.
func FindOr[T any](match Predicate[T], def T) Found[T] {
	return Found[T]{match: match, value: def}
}

// FindOrElse builds a descriptor with a deferred default. The supplier is
// invoked only when the consuming search exhausts its input without a
// match, once per Default call. Wrap it with Lazy to memoize across calls.
func FindOrElse[T any](match Predicate[T], def Supplier[T]) Found[T] {
	return Found[T]{match: match, deferred: def}
}

// Match reports whether v satisfies the descriptor's condition.
func (f Found[T]) Match(v T) bool {
	return f.match(v)
}

// Default yields the fallback value: the literal default, or the result of
// invoking the deferred supplier.
func (f Found[T]) Default() T {
	if f.deferred != nil {
		return f.deferred()
	}
	return f.value
}
