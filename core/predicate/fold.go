package predicate

import "fmt"

// LeafBuilder turns one named field, plus whatever external input it has
// captured (a value to match, typically), into a leaf predicate.
type LeafBuilder[T any] func(NamedField[T]) (Predicate[T], error)

// Fold reduces an ordered sequence of named fields into a single predicate.
// It maintains an accumulator initialized to seed and, for each field in
// order, builds a leaf predicate and combines it into the accumulator.
//
// The seed must be the identity element matching the combinator's semantics:
// False for Or, True for And. This is the caller's responsibility and is not
// validated. An empty sequence returns the seed unchanged.
//
// A failure from build aborts the fold immediately; no partial result is
// returned.
func Fold[T any](items []NamedField[T], combine Combinator[T], seed Predicate[T], build LeafBuilder[T]) (Predicate[T], error) {
	acc := seed
	for _, item := range items {
		leaf, err := build(item)
		if err != nil {
			return nil, fmt.Errorf("building predicate for field %q: %w", item.Name, err)
		}
		acc = combine(acc, leaf)
	}
	return acc, nil
}

// Clause pairs a named field with the runtime value its leaf predicate will
// match against.
type Clause[T any] struct {
	Field NamedField[T]
	Value any
}

// FoldValues folds an ordered field-to-value pairing into a single predicate,
// building each leaf with the given constructor. The NamedField comparison
// methods are usable directly as constructors via method expressions, e.g.
//
//	p := FoldValues(clauses, Or[T], False[T](), NamedField[T].Contains)
func FoldValues[T any](clauses []Clause[T], combine Combinator[T], seed Predicate[T], leaf func(NamedField[T], any) Predicate[T]) Predicate[T] {
	acc := seed
	for _, c := range clauses {
		acc = combine(acc, leaf(c.Field, c.Value))
	}
	return acc
}

// Chain folds already-built predicates into one, left to right, seeded by the
// combinator's identity element.
func Chain[T any](combine Combinator[T], seed Predicate[T], preds ...Predicate[T]) Predicate[T] {
	acc := seed
	for _, p := range preds {
		acc = combine(acc, p)
	}
	return acc
}
