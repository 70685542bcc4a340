package funcs

// ============================================================================
// PREDICATE FACTORIES
// ============================================================================

// AlwaysTrue returns a predicate that accepts every value.
func AlwaysTrue[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// AlwaysFalse returns a predicate that rejects every value.
func AlwaysFalse[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// EqualTo returns a predicate that is true for values equal to want.
func EqualTo[T comparable](want T) Predicate[T] {
	return func(v T) bool { return v == want }
}

// In returns a predicate that is true for values contained in the given set.
// A nil or empty set yields a predicate that rejects everything.
func In[T comparable](set ...T) Predicate[T] {
	members := make(map[T]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	return func(v T) bool {
		_, ok := members[v]
		return ok
	}
}

// IsZero returns a predicate that is true for the zero value of T.
func IsZero[T comparable]() Predicate[T] {
	return func(v T) bool {
		var zero T
		return v == zero
	}
}

// NonZero returns a predicate that is true for any value other than the
// zero value of T.
func NonZero[T comparable]() Predicate[T] {
	return IsZero[T]().Not()
}

// And returns a predicate that is true only when both p and q pass.
// q is not evaluated when p fails.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) && q(v) }
}

// Or returns a predicate that is true when either p or q passes.
// q is not evaluated when p passes.
func (p Predicate[T]) Or(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) || q(v) }
}

// Not returns the negation of p.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// BindFirst fixes the first argument of a BiPredicate, producing a
// single-argument predicate over the second.
func (p BiPredicate[A, B]) BindFirst(a A) Predicate[B] {
	return func(b B) bool { return p(a, b) }
}

// BindSecond fixes the second argument of a BiPredicate, producing a
// single-argument predicate over the first.
func (p BiPredicate[A, B]) BindSecond(b B) Predicate[A] {
	return func(a A) bool { return p(a, b) }
}

// ============================================================================
// STATEFUL PREDICATES
// ============================================================================

// Distinct returns a stateful predicate that is true the first time it sees
// a value and false on every repeat. The seen-set grows with the number of
// distinct values observed. Not safe for concurrent use.
func Distinct[T comparable]() Predicate[T] {
	return DistinctBy(Identity[T]())
}

// DistinctBy returns a stateful predicate that is true the first time it
// sees a key (as extracted by key) and false on every repeat.
// Not safe for concurrent use.
func DistinctBy[T any, K comparable](key Mapper[T, K]) Predicate[T] {
	seen := make(map[K]struct{})
	return func(v T) bool {
		k := key(v)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
		return true
	}
}
