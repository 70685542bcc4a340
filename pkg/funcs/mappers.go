package funcs

// ============================================================================
// MAPPER FACTORIES
// ============================================================================

// Identity returns a mapper that returns its argument unchanged.
func Identity[T any]() Mapper[T, T] {
	return func(v T) T { return v }
}

// Constant returns a mapper that ignores its argument and always returns v.
func Constant[In, Out any](v Out) Mapper[In, Out] {
	return func(In) Out { return v }
}

// Compose is left-to-right mapper composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f Mapper[A, B], g Mapper[B, C]) Mapper[A, C] {
	return func(a A) C { return g(f(a)) }
}

// AndThen appends g after m: m.AndThen(g)(x) == g(m(x)).
func (m Mapper[In, Out]) AndThen(g Mapper[Out, Out]) Mapper[In, Out] {
	return func(v In) Out { return g(m(v)) }
}

// Bind fixes the mapper's argument, producing a supplier.
func (m Mapper[In, Out]) Bind(in In) Supplier[Out] {
	return func() Out { return m(in) }
}

// BindFirst fixes the first argument of a BiMapper, producing a
// single-argument mapper over the second.
func (m BiMapper[A, B, Out]) BindFirst(a A) Mapper[B, Out] {
	return func(b B) Out { return m(a, b) }
}

// BindSecond fixes the second argument of a BiMapper, producing a
// single-argument mapper over the first.
func (m BiMapper[A, B, Out]) BindSecond(b B) Mapper[A, Out] {
	return func(a A) Out { return m(a, b) }
}
