// Package funcs provides stateless factories for building and composing
// functional values: predicates, mappers, consumers, suppliers, comparators
// and small immutable holders such as pairs and find-with-default descriptors.
//
// Every factory returns a closure that adapts one functional shape into
// another (fixing an argument of a two-argument function, chaining
// comparators, wrapping a supplier with memoization). None of them hold
// shared state; the few stateful closures (Distinct, Lazy) own their state
// exclusively and are documented as single-goroutine.
//
// The package pairs with go-funcs/pkg/stream, whose operators accept these
// types directly, but has no dependency on it and is usable standalone.
package funcs
