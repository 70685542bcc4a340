package funcs

import "cmp"

// ============================================================================
// COMPARATOR BUILDERS
// ============================================================================

// Natural returns the natural ordering comparator for ordered types.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Comparing returns a comparator that orders values by an extracted key
// using the key type's natural ordering.
func Comparing[T any, K cmp.Ordered](key Mapper[T, K]) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// ComparingBy returns a comparator that orders values by an extracted key
// using an explicit key comparator.
func ComparingBy[T, K any](key Mapper[T, K], keyCmp Comparator[K]) Comparator[T] {
	return func(a, b T) int { return keyCmp(key(a), key(b)) }
}

// Reversed returns the comparator with its ordering inverted.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Then returns a comparator that falls back to next when c considers two
// values equivalent.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// NilFirst lifts a comparator over values to a comparator over pointers,
// ordering nil pointers before everything else.
func NilFirst[T any](c Comparator[T]) Comparator[*T] {
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		default:
			return c(*a, *b)
		}
	}
}

// NilLast lifts a comparator over values to a comparator over pointers,
// ordering nil pointers after everything else.
func NilLast[T any](c Comparator[T]) Comparator[*T] {
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		default:
			return c(*a, *b)
		}
	}
}
