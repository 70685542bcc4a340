package funcs

import "strings"

// ============================================================================
// NULL-SAFETY AND DEFAULT-VALUE WRAPPERS
// ============================================================================

// ValueOrDefault returns v, or def when v is the zero value of T.
func ValueOrDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// ValueOrElse returns v, or the result of def when v is the zero value of T.
// def is not invoked when v is non-zero.
func ValueOrElse[T comparable](v T, def Supplier[T]) T {
	var zero T
	if v == zero {
		return def()
	}
	return v
}

// EmptyIfNil treats a nil slice as empty.
func EmptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// EmptyMapIfNil treats a nil map as empty.
func EmptyMapIfNil[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}

// BlankAsDefault returns def when s is empty or all whitespace, otherwise s
// unchanged.
func BlankAsDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// TrimmedOrDefault trims surrounding whitespace from s and returns the
// result, or def when nothing remains.
func TrimmedOrDefault(s, def string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return def
	}
	return trimmed
}

// ============================================================================
// NAME-CASE FORMATTING
// ============================================================================

// SnakeToTitle converts a snake_case name to title case with spaces:
// "retry_limit" becomes "Retry Limit". Consecutive underscores collapse.
func SnakeToTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// TitleCaseName formats a constant-style name such as "MAX_RETRY_LIMIT" as
// "Max Retry Limit". It is case-insensitive on input.
func TitleCaseName(name string) string {
	return SnakeToTitle(strings.ToLower(name))
}
