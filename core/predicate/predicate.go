// Package predicate provides generic boolean predicates over arbitrary record
// types, together with the combinators and identity elements needed to compose
// a runtime-chosen set of conditions into a single predicate. Predicates built
// here are plain Go closures intended for direct evaluation; the core/filter
// package provides the structural counterpart for consumers that need to
// introspect or translate composed conditions.
package predicate

// Predicate is a boolean-valued function of one record.
type Predicate[T any] func(T) bool

// Combinator is a binary operator over two predicates. The standard instances
// are And and Or; each has an identity element (True and False respectively)
// that leaves the other operand semantically unchanged.
type Combinator[T any] func(Predicate[T], Predicate[T]) Predicate[T]

// True returns the predicate that accepts every record. It is the identity
// element of And.
func True[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// False returns the predicate that rejects every record. It is the identity
// element of Or.
func False[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// And is the lifted version of && over predicates.
func And[T any](p, q Predicate[T]) Predicate[T] {
	return func(t T) bool { return p(t) && q(t) }
}

// Or is the lifted version of || over predicates.
func Or[T any](p, q Predicate[T]) Predicate[T] {
	return func(t T) bool { return p(t) || q(t) }
}

// Not returns the complement of a predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(t T) bool { return !p(t) }
}
