package funcs

// ============================================================================
// FUNCTIONAL TYPES
// ============================================================================

// Predicate is a boolean-valued condition over a single value.
type Predicate[T any] func(T) bool

// BiPredicate is a boolean-valued condition over two values.
type BiPredicate[A, B any] func(A, B) bool

// Mapper transforms a value of one type into another.
type Mapper[In, Out any] func(In) Out

// BiMapper combines two values into one.
type BiMapper[A, B, Out any] func(A, B) Out

// Consumer accepts a value and performs a side effect.
type Consumer[T any] func(T)

// BiConsumer accepts two values and performs a side effect.
type BiConsumer[A, B any] func(A, B)

// Supplier produces a value from no arguments.
type Supplier[T any] func() T

// ErrSupplier produces a value or fails.
type ErrSupplier[T any] func() (T, error)

// Comparator orders two values. It returns a negative number when a sorts
// before b, zero when they are equivalent, and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// Pair is an immutable holder of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf constructs a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns the pair with its components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}
