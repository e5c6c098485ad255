// Package filter provides a fluent API for constructing Filter trees, plus
// the fold that assembles a filter from a dynamically-sized set of named
// conditions.
package filter

// Builder provides a fluent API for constructing Filter structures.
type Builder struct {
	filter Filter
}

// NewBuilder creates a new, empty filter builder instance.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns the constructed Filter.
func (b *Builder) Build() Filter {
	return b.filter
}

// Where begins the construction of a single condition for a specific field.
func (b *Builder) Where(field string) *ConditionBuilder {
	return &ConditionBuilder{parent: b, field: field}
}

// Group begins the construction of a group of conditions combined with a
// logical operator.
func (b *Builder) Group(operator LogicalOperator) *GroupBuilder {
	return &GroupBuilder{parent: b, operator: operator}
}

// ConditionBuilder is used to build a single top-level condition.
type ConditionBuilder struct {
	parent *Builder
	field  string
}

// Eq adds an equality condition.
func (cb *ConditionBuilder) Eq(value Value) *Builder {
	return cb.add(ComparisonOperatorEq, value)
}

// Neq adds a not-equal condition.
func (cb *ConditionBuilder) Neq(value Value) *Builder {
	return cb.add(ComparisonOperatorNeq, value)
}

// Lt adds a less-than condition.
func (cb *ConditionBuilder) Lt(value Value) *Builder {
	return cb.add(ComparisonOperatorLt, value)
}

// Lte adds a less-than-or-equal condition.
func (cb *ConditionBuilder) Lte(value Value) *Builder {
	return cb.add(ComparisonOperatorLte, value)
}

// Gt adds a greater-than condition.
func (cb *ConditionBuilder) Gt(value Value) *Builder {
	return cb.add(ComparisonOperatorGt, value)
}

// Gte adds a greater-than-or-equal condition.
func (cb *ConditionBuilder) Gte(value Value) *Builder {
	return cb.add(ComparisonOperatorGte, value)
}

// In adds an "in" condition, checking if a field's value is within a set of values.
func (cb *ConditionBuilder) In(values ...Value) *Builder {
	return cb.add(ComparisonOperatorIn, values)
}

// Nin adds a "not in" condition.
func (cb *ConditionBuilder) Nin(values ...Value) *Builder {
	return cb.add(ComparisonOperatorNin, values)
}

// Contains adds a substring-match condition.
func (cb *ConditionBuilder) Contains(value Value) *Builder {
	return cb.add(ComparisonOperatorContains, value)
}

// NotContains adds a negated substring-match condition.
func (cb *ConditionBuilder) NotContains(value Value) *Builder {
	return cb.add(ComparisonOperatorNotContains, value)
}

// StartsWith adds a prefix-match condition.
func (cb *ConditionBuilder) StartsWith(value Value) *Builder {
	return cb.add(ComparisonOperatorStartsWith, value)
}

// EndsWith adds a suffix-match condition.
func (cb *ConditionBuilder) EndsWith(value Value) *Builder {
	return cb.add(ComparisonOperatorEndsWith, value)
}

// Exists adds a condition checking that a field is present and not null.
func (cb *ConditionBuilder) Exists() *Builder {
	return cb.add(ComparisonOperatorExists, true)
}

// NotExists adds a condition checking that a field is absent or null.
func (cb *ConditionBuilder) NotExists() *Builder {
	return cb.add(ComparisonOperatorNotExists, true)
}

// Custom allows the use of a custom comparison operator.
func (cb *ConditionBuilder) Custom(operator ComparisonOperator, value Value) *Builder {
	return cb.add(operator, value)
}

func (cb *ConditionBuilder) add(operator ComparisonOperator, value Value) *Builder {
	cb.parent.filter = Simple(cb.field, operator, value)
	return cb.parent
}

// GroupBuilder is used to build a group of conditions.
type GroupBuilder struct {
	parent     *Builder
	operator   LogicalOperator
	conditions []Filter
}

// Where adds a new condition to the current group.
func (gb *GroupBuilder) Where(field string) *GroupConditionBuilder {
	return &GroupConditionBuilder{group: gb, field: field}
}

// Add appends an already-built filter (including nested groups) to the group.
func (gb *GroupBuilder) Add(f Filter) *GroupBuilder {
	gb.conditions = append(gb.conditions, f)
	return gb
}

// End finalizes the current group and returns to the main builder.
func (gb *GroupBuilder) End() *Builder {
	gb.parent.filter = Filter{Group: &Group{
		Operator:   gb.operator,
		Conditions: gb.conditions,
	}}
	return gb.parent
}

// GroupConditionBuilder is used to build a condition within a group.
type GroupConditionBuilder struct {
	group *GroupBuilder
	field string
}

// Eq adds an equality condition to the current group.
func (gcb *GroupConditionBuilder) Eq(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorEq, value)
}

// Neq adds a not-equal condition to the current group.
func (gcb *GroupConditionBuilder) Neq(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorNeq, value)
}

// Lt adds a less-than condition to the current group.
func (gcb *GroupConditionBuilder) Lt(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorLt, value)
}

// Lte adds a less-than-or-equal condition to the current group.
func (gcb *GroupConditionBuilder) Lte(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorLte, value)
}

// Gt adds a greater-than condition to the current group.
func (gcb *GroupConditionBuilder) Gt(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorGt, value)
}

// Gte adds a greater-than-or-equal condition to the current group.
func (gcb *GroupConditionBuilder) Gte(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorGte, value)
}

// In adds an "in" condition to the current group.
func (gcb *GroupConditionBuilder) In(values ...Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorIn, values)
}

// Nin adds a "not in" condition to the current group.
func (gcb *GroupConditionBuilder) Nin(values ...Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorNin, values)
}

// Contains adds a substring-match condition to the current group.
func (gcb *GroupConditionBuilder) Contains(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorContains, value)
}

// NotContains adds a negated substring-match condition to the current group.
func (gcb *GroupConditionBuilder) NotContains(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorNotContains, value)
}

// StartsWith adds a prefix-match condition to the current group.
func (gcb *GroupConditionBuilder) StartsWith(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorStartsWith, value)
}

// EndsWith adds a suffix-match condition to the current group.
func (gcb *GroupConditionBuilder) EndsWith(value Value) *GroupBuilder {
	return gcb.add(ComparisonOperatorEndsWith, value)
}

// Exists adds an exists condition to the current group.
func (gcb *GroupConditionBuilder) Exists() *GroupBuilder {
	return gcb.add(ComparisonOperatorExists, true)
}

// NotExists adds a not-exists condition to the current group.
func (gcb *GroupConditionBuilder) NotExists() *GroupBuilder {
	return gcb.add(ComparisonOperatorNotExists, true)
}

// Custom allows custom comparison operators within a group.
func (gcb *GroupConditionBuilder) Custom(operator ComparisonOperator, value Value) *GroupBuilder {
	return gcb.add(operator, value)
}

func (gcb *GroupConditionBuilder) add(operator ComparisonOperator, value Value) *GroupBuilder {
	gcb.group.conditions = append(gcb.group.conditions, Simple(gcb.field, operator, value))
	return gcb.group
}

// Simple is a helper to create a single-condition filter.
func Simple(field string, operator ComparisonOperator, value Value) Filter {
	return Filter{
		Condition: &Condition{
			Field:    field,
			Operator: operator,
			Value:    value,
		},
	}
}

// GroupOf is a helper to create a filter group.
func GroupOf(operator LogicalOperator, conditions ...Filter) Filter {
	return Filter{
		Group: &Group{
			Operator:   operator,
			Conditions: conditions,
		},
	}
}

// FieldValue pairs a field name with the runtime value its condition matches.
type FieldValue struct {
	Field string
	Value Value
}

// FromValues folds an ordered field-to-value pairing into a single filter:
// one condition per pair, built with the given comparison operator, combined
// under the given logical operator in the pairs' order. An empty pairing
// yields the operator's inert filter, MatchNone for OR and MatchAll for AND,
// so the result is always safe to evaluate or translate.
func FromValues(op LogicalOperator, cmp ComparisonOperator, pairs []FieldValue) Filter {
	conditions := make([]Filter, 0, len(pairs))
	for _, pair := range pairs {
		conditions = append(conditions, Simple(pair.Field, cmp, pair.Value))
	}
	return Filter{Group: &Group{Operator: op, Conditions: conditions}}
}

// Combine folds already-built filters into one group under the given logical
// operator, preserving their order. With no arguments it returns the
// operator's inert filter.
func Combine(op LogicalOperator, filters ...Filter) Filter {
	return Filter{Group: &Group{Operator: op, Conditions: filters}}
}
