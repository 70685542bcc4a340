package funcs

// ============================================================================
// CONSUMER FACTORIES
// ============================================================================

// Nop returns a consumer that does nothing.
func Nop[T any]() Consumer[T] {
	return func(T) {}
}

// AndThen returns a consumer that invokes c, then next, with the same value.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(v T) {
		c(v)
		next(v)
	}
}

// When returns a consumer that invokes c only for values passing pred.
func (c Consumer[T]) When(pred Predicate[T]) Consumer[T] {
	return func(v T) {
		if pred(v) {
			c(v)
		}
	}
}

// BindFirst fixes the first argument of a BiConsumer, producing a
// single-argument consumer over the second.
func (c BiConsumer[A, B]) BindFirst(a A) Consumer[B] {
	return func(b B) { c(a, b) }
}

// BindSecond fixes the second argument of a BiConsumer, producing a
// single-argument consumer over the first.
func (c BiConsumer[A, B]) BindSecond(b B) Consumer[A] {
	return func(a A) { c(a, b) }
}
