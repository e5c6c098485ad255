// Package filter defines the structural representation of composed
// conditions. Unlike the closures in core/predicate, a Filter is an
// introspectable tree that external collaborators (an in-memory matcher, a
// SQL translator) can walk and rewrite into whatever form their execution
// layer requires.
package filter

// LogicalOperator combines the conditions of a group.
type LogicalOperator string

// Supported logical operators.
const (
	LogicalAnd LogicalOperator = "and"
	LogicalOr  LogicalOperator = "or"
	LogicalNot LogicalOperator = "not"
)

// ComparisonOperator defines the set of operators that can be used in a
// condition.
type ComparisonOperator string

// Supported comparison operators.
const (
	ComparisonOperatorEq          ComparisonOperator = "eq"
	ComparisonOperatorNeq         ComparisonOperator = "neq"
	ComparisonOperatorLt          ComparisonOperator = "lt"
	ComparisonOperatorLte         ComparisonOperator = "lte"
	ComparisonOperatorGt          ComparisonOperator = "gt"
	ComparisonOperatorGte         ComparisonOperator = "gte"
	ComparisonOperatorIn          ComparisonOperator = "in"
	ComparisonOperatorNin         ComparisonOperator = "nin"
	ComparisonOperatorContains    ComparisonOperator = "contains"
	ComparisonOperatorNotContains ComparisonOperator = "ncontains"
	ComparisonOperatorStartsWith  ComparisonOperator = "startswith"
	ComparisonOperatorEndsWith    ComparisonOperator = "endswith"
	ComparisonOperatorExists      ComparisonOperator = "exists"
	ComparisonOperatorNotExists   ComparisonOperator = "nexists"
)

// Value represents the value used in a condition. It can be of any type,
// allowing for flexible filter construction.
type Value any

// Record is the in-memory shape a filter is evaluated against.
type Record = map[string]any

// Condition defines a single comparison against one field.
type Condition struct {
	Field    string             // The field to apply the condition on.
	Operator ComparisonOperator // The comparison operator to use.
	Value    Value              // The value to compare against.
}

// Group combines multiple filters using a logical operator, allowing the
// construction of nested filter logic.
type Group struct {
	Operator   LogicalOperator // The logical operator combining the conditions.
	Conditions []Filter        // The list of conditions or nested groups.
}

// Filter is a union type representing either a single condition or a group.
type Filter struct {
	Condition *Condition `json:",omitempty"` // A single condition.
	Group     *Group     `json:",omitempty"` // A group of conditions.
}

// MatchAll returns the filter that accepts every record: the empty AND group,
// the identity element of conjunction.
func MatchAll() Filter {
	return Filter{Group: &Group{Operator: LogicalAnd}}
}

// MatchNone returns the filter that rejects every record: the empty OR group,
// the identity element of disjunction.
func MatchNone() Filter {
	return Filter{Group: &Group{Operator: LogicalOr}}
}

// standardComparisonOperators is the set of built-in comparison operators.
var standardComparisonOperators = map[ComparisonOperator]struct{}{
	ComparisonOperatorEq:          {},
	ComparisonOperatorNeq:         {},
	ComparisonOperatorLt:          {},
	ComparisonOperatorLte:         {},
	ComparisonOperatorGt:          {},
	ComparisonOperatorGte:         {},
	ComparisonOperatorIn:          {},
	ComparisonOperatorNin:         {},
	ComparisonOperatorContains:    {},
	ComparisonOperatorNotContains: {},
	ComparisonOperatorStartsWith:  {},
	ComparisonOperatorEndsWith:    {},
	ComparisonOperatorExists:      {},
	ComparisonOperatorNotExists:   {},
}

// IsStandard checks if a comparison operator is one of the built-in operators.
func (c ComparisonOperator) IsStandard() bool {
	_, ok := standardComparisonOperators[c]
	return ok
}

// StandardComparisonOperators returns the set of built-in comparison
// operators. This is useful for validation and for registering overrides.
func StandardComparisonOperators() map[ComparisonOperator]struct{} {
	return standardComparisonOperators
}
