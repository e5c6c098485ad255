package filter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/asaidimu/go-sift/core/predicate"
	"go.uber.org/zap"
)

// OperatorFunc performs custom comparison logic for one condition. It
// receives the record under evaluation, the condition's field and its
// runtime value, and reports whether the record passes.
type OperatorFunc func(record Record, field string, value Value) (bool, error)

// Matcher evaluates Filter trees against in-memory records. Standard
// comparison operators are built in; non-standard operators must be
// registered before use or evaluation fails.
type Matcher struct {
	operators map[ComparisonOperator]OperatorFunc
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewMatcher creates a new Matcher instance.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		operators: make(map[ComparisonOperator]OperatorFunc),
		logger:    logger,
	}
}

// RegisterOperator registers a custom comparison operator.
func (m *Matcher) RegisterOperator(operator ComparisonOperator, fn OperatorFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operators[operator] = fn
	m.logger.Info("Registered operator", zap.String("operator", string(operator)))
}

// RegisterOperators registers multiple custom operators from a map.
func (m *Matcher) RegisterOperators(functionMap map[ComparisonOperator]OperatorFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for operator, fn := range functionMap {
		m.operators[operator] = fn
		m.logger.Info("Registered operator", zap.String("operator", string(operator)))
	}
}

// Match evaluates a record against a filter tree. It returns true if the
// record satisfies the filter, false otherwise, and an error if evaluation
// encounters an unregistered operator or a malformed filter node.
func (m *Matcher) Match(ctx context.Context, f Filter, record Record) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.evaluate(record, f)
}

// Compile lowers a filter tree into a single predicate closure over records,
// bridging the structural representation to core/predicate. The tree is
// validated up front; conditions that fail at evaluation time (a type
// mismatch, a custom operator returning an error) evaluate to false in the
// compiled form, since a Predicate carries no error channel.
func (m *Matcher) Compile(f Filter) (predicate.Predicate[Record], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.compile(f)
}

func (m *Matcher) compile(f Filter) (predicate.Predicate[Record], error) {
	if f.Condition != nil {
		cond := *f.Condition
		// Custom operators are captured at compile time so the compiled
		// predicate never touches the registry again.
		eval := func(record Record) (bool, error) {
			return evaluateStandardCondition(record, &cond)
		}
		if !cond.Operator.IsStandard() {
			fn, ok := m.operators[cond.Operator]
			if !ok {
				return nil, fmt.Errorf("unregistered operator: %s", cond.Operator)
			}
			eval = func(record Record) (bool, error) {
				return fn(record, cond.Field, cond.Value)
			}
		}
		return func(record Record) bool {
			passes, err := eval(record)
			if err != nil {
				m.logger.Debug("Compiled condition evaluated with error",
					zap.String("field", cond.Field), zap.Error(err))
				return false
			}
			return passes
		}, nil
	}
	if f.Group != nil {
		children := make([]predicate.Predicate[Record], 0, len(f.Group.Conditions))
		for _, sub := range f.Group.Conditions {
			child, err := m.compile(sub)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		switch f.Group.Operator {
		case LogicalAnd:
			return predicate.Chain(predicate.And[Record], predicate.True[Record](), children...), nil
		case LogicalOr:
			return predicate.Chain(predicate.Or[Record], predicate.False[Record](), children...), nil
		case LogicalNot:
			if len(children) != 1 {
				return nil, fmt.Errorf("not group requires exactly one condition, got %d", len(children))
			}
			return predicate.Not(children[0]), nil
		default:
			return nil, fmt.Errorf("unsupported logical operator: %s", f.Group.Operator)
		}
	}
	return nil, fmt.Errorf("empty or invalid filter structure")
}

// evaluate recursively evaluates a filter node against a record.
func (m *Matcher) evaluate(record Record, f Filter) (bool, error) {
	if f.Condition != nil {
		return m.evaluateCondition(record, f.Condition)
	}
	if f.Group != nil {
		switch f.Group.Operator {
		case LogicalAnd:
			// The empty AND group matches everything (identity of conjunction).
			for _, sub := range f.Group.Conditions {
				passes, err := m.evaluate(record, sub)
				if err != nil || !passes {
					return false, err
				}
			}
			return true, nil
		case LogicalOr:
			// The empty OR group matches nothing (identity of disjunction).
			for _, sub := range f.Group.Conditions {
				passes, err := m.evaluate(record, sub)
				if err != nil {
					return false, err
				}
				if passes {
					return true, nil
				}
			}
			return false, nil
		case LogicalNot:
			if len(f.Group.Conditions) != 1 {
				return false, fmt.Errorf("not group requires exactly one condition, got %d", len(f.Group.Conditions))
			}
			passes, err := m.evaluate(record, f.Group.Conditions[0])
			if err != nil {
				return false, err
			}
			return !passes, nil
		default:
			return false, fmt.Errorf("unsupported logical operator: %s", f.Group.Operator)
		}
	}
	return false, fmt.Errorf("empty or invalid filter structure")
}

// evaluateCondition dispatches a single condition to either a registered
// custom operator or the standard in-memory evaluation.
func (m *Matcher) evaluateCondition(record Record, cond *Condition) (bool, error) {
	if !cond.Operator.IsStandard() {
		fn, ok := m.operators[cond.Operator]
		if !ok {
			return false, fmt.Errorf("unregistered operator: %s", cond.Operator)
		}
		return fn(record, cond.Field, cond.Value)
	}
	return evaluateStandardCondition(record, cond)
}

// evaluateStandardCondition performs the in-memory evaluation for standard
// comparison operators.
func evaluateStandardCondition(record Record, cond *Condition) (bool, error) {
	fieldValue, exists := record[cond.Field]

	switch cond.Operator {
	case ComparisonOperatorExists:
		return exists && fieldValue != nil, nil
	case ComparisonOperatorNotExists:
		return !exists || fieldValue == nil, nil
	}

	if !exists {
		// A missing field fails every comparison.
		return false, nil
	}

	switch cond.Operator {
	case ComparisonOperatorEq:
		return valuesEqual(fieldValue, cond.Value), nil
	case ComparisonOperatorNeq:
		return !valuesEqual(fieldValue, cond.Value), nil
	case ComparisonOperatorLt, ComparisonOperatorLte, ComparisonOperatorGt, ComparisonOperatorGte:
		fvNum, okF := predicate.ToFloat64(fieldValue)
		condNum, okC := predicate.ToFloat64(cond.Value)
		if !okF || !okC {
			return false, fmt.Errorf("unsupported types for %s comparison between %T and %T", cond.Operator, fieldValue, cond.Value)
		}
		switch cond.Operator {
		case ComparisonOperatorLt:
			return fvNum < condNum, nil
		case ComparisonOperatorLte:
			return fvNum <= condNum, nil
		case ComparisonOperatorGt:
			return fvNum > condNum, nil
		default:
			return fvNum >= condNum, nil
		}
	case ComparisonOperatorIn, ComparisonOperatorNin:
		values := valueSlice(cond.Value)
		found := false
		for _, v := range values {
			if valuesEqual(fieldValue, v) {
				found = true
				break
			}
		}
		if cond.Operator == ComparisonOperatorIn {
			return found, nil
		}
		return !found, nil
	case ComparisonOperatorContains, ComparisonOperatorNotContains, ComparisonOperatorStartsWith, ComparisonOperatorEndsWith:
		return evaluateStringCondition(fieldValue, cond)
	default:
		return false, fmt.Errorf("unsupported standard comparison operator: %s", cond.Operator)
	}
}

func evaluateStringCondition(fieldValue any, cond *Condition) (bool, error) {
	s, ok := fieldValue.(string)
	if !ok {
		return false, fmt.Errorf("unsupported type %T for %s comparison on field '%s'", fieldValue, cond.Operator, cond.Field)
	}
	sub := fmt.Sprintf("%v", cond.Value)

	switch cond.Operator {
	case ComparisonOperatorContains:
		return strings.Contains(s, sub), nil
	case ComparisonOperatorNotContains:
		return !strings.Contains(s, sub), nil
	case ComparisonOperatorStartsWith:
		return strings.HasPrefix(s, sub), nil
	default:
		return strings.HasSuffix(s, sub), nil
	}
}

// valuesEqual compares two values, treating numeric values of differing Go
// types as equal when their magnitudes match.
func valuesEqual(a, b any) bool {
	if a == b {
		return true
	}
	an, okA := predicate.ToFloat64(a)
	bn, okB := predicate.ToFloat64(b)
	return okA && okB && an == bn
}

// valueSlice normalizes an in/nin condition value to a slice of candidates.
func valueSlice(v Value) []any {
	switch vals := v.(type) {
	case []any:
		return vals
	case []Value:
		out := make([]any, len(vals))
		for i, val := range vals {
			out[i] = val
		}
		return out
	case nil:
		return nil
	default:
		return []any{v}
	}
}
