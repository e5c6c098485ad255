package predicate

import (
	"fmt"
	"strconv"
	"strings"
)

// NamedField pairs a label with a projection from a record to one of its
// values. Fields are configured once, before folding, and are immutable.
type NamedField[T any] struct {
	Name string      // The label of the field, used in diagnostics.
	Get  func(T) any // The projection extracting the field's value from a record.
}

// Field constructs a NamedField from a label and a projection.
func Field[T any](name string, get func(T) any) NamedField[T] {
	return NamedField[T]{Name: name, Get: get}
}

// Eq returns a leaf predicate that accepts records whose projected value
// equals the given value. Numeric values compare by magnitude regardless of
// their concrete Go type.
func (f NamedField[T]) Eq(value any) Predicate[T] {
	return func(t T) bool {
		got := f.Get(t)
		if got == value {
			return true
		}
		if gn, ok := ToFloat64(got); ok {
			if vn, ok := ToFloat64(value); ok {
				return gn == vn
			}
		}
		return false
	}
}

// Neq returns the complement of Eq.
func (f NamedField[T]) Neq(value any) Predicate[T] {
	return Not(f.Eq(value))
}

// Lt returns a leaf predicate that accepts records whose projected numeric
// value is less than the given value. Non-numeric operands never match.
func (f NamedField[T]) Lt(value any) Predicate[T] {
	return f.compare(value, func(a, b float64) bool { return a < b })
}

// Lte returns a less-than-or-equal leaf predicate.
func (f NamedField[T]) Lte(value any) Predicate[T] {
	return f.compare(value, func(a, b float64) bool { return a <= b })
}

// Gt returns a greater-than leaf predicate.
func (f NamedField[T]) Gt(value any) Predicate[T] {
	return f.compare(value, func(a, b float64) bool { return a > b })
}

// Gte returns a greater-than-or-equal leaf predicate.
func (f NamedField[T]) Gte(value any) Predicate[T] {
	return f.compare(value, func(a, b float64) bool { return a >= b })
}

// Contains returns a leaf predicate that accepts records whose projected
// string value contains the given substring. Non-string operands never match.
func (f NamedField[T]) Contains(value any) Predicate[T] {
	return f.stringMatch(value, strings.Contains)
}

// NotContains returns the complement of Contains for string operands;
// non-string operands still never match.
func (f NamedField[T]) NotContains(value any) Predicate[T] {
	return f.stringMatch(value, func(s, sub string) bool { return !strings.Contains(s, sub) })
}

// StartsWith returns a prefix-match leaf predicate over string values.
func (f NamedField[T]) StartsWith(value any) Predicate[T] {
	return f.stringMatch(value, strings.HasPrefix)
}

// EndsWith returns a suffix-match leaf predicate over string values.
func (f NamedField[T]) EndsWith(value any) Predicate[T] {
	return f.stringMatch(value, strings.HasSuffix)
}

func (f NamedField[T]) compare(value any, cmp func(a, b float64) bool) Predicate[T] {
	return func(t T) bool {
		gn, ok := ToFloat64(f.Get(t))
		if !ok {
			return false
		}
		vn, ok := ToFloat64(value)
		if !ok {
			return false
		}
		return cmp(gn, vn)
	}
}

func (f NamedField[T]) stringMatch(value any, match func(s, sub string) bool) Predicate[T] {
	sub := fmt.Sprintf("%v", value)
	return func(t T) bool {
		s, ok := f.Get(t).(string)
		if !ok {
			return false
		}
		return match(s, sub)
	}
}

// ToFloat64 converts a value of various numeric types to a float64. It returns
// the converted float64 and a boolean indicating whether the conversion was
// successful.
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
