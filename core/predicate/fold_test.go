package predicate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func customerFields() []NamedField[customer] {
	return []NamedField[customer]{
		Field("Country", func(c customer) any { return c.Country }),
		Field("City", func(c customer) any { return c.City }),
	}
}

func equalityBuilder(values map[string]any) LeafBuilder[customer] {
	return func(f NamedField[customer]) (Predicate[customer], error) {
		return f.Eq(values[f.Name]), nil
	}
}

func TestFold_OrSemantics(t *testing.T) {
	values := map[string]any{"Country": "UK", "City": "Seattle"}
	p, err := Fold(customerFields(), Or[customer], False[customer](), equalityBuilder(values))
	assert.NoError(t, err)

	// True iff at least one leaf predicate is true.
	assert.True(t, p(customer{Country: "UK", City: "Paris"}))
	assert.True(t, p(customer{Country: "FR", City: "Seattle"}))
	assert.False(t, p(customer{Country: "FR", City: "Paris"}))
}

func TestFold_AndSemantics(t *testing.T) {
	values := map[string]any{"Country": "UK", "City": "Seattle"}
	p, err := Fold(customerFields(), And[customer], True[customer](), equalityBuilder(values))
	assert.NoError(t, err)

	// True iff every leaf predicate is true.
	assert.False(t, p(customer{Country: "UK", City: "Paris"}))
	assert.True(t, p(customer{Country: "UK", City: "Seattle"}))
}

func TestFold_EmptySequenceReturnsSeed(t *testing.T) {
	orSeed, err := Fold(nil, Or[customer], False[customer](), equalityBuilder(nil))
	assert.NoError(t, err)
	assert.False(t, orSeed(customer{Country: "UK"}))

	andSeed, err := Fold([]NamedField[customer]{}, And[customer], True[customer](), equalityBuilder(nil))
	assert.NoError(t, err)
	assert.True(t, andSeed(customer{Country: "UK"}))
}

func TestFold_SingleElement(t *testing.T) {
	fields := customerFields()[:1]
	values := map[string]any{"Country": "UK"}
	leaf := customerFields()[0].Eq("UK")

	orFold, err := Fold(fields, Or[customer], False[customer](), equalityBuilder(values))
	assert.NoError(t, err)
	andFold, err := Fold(fields, And[customer], True[customer](), equalityBuilder(values))
	assert.NoError(t, err)

	for _, c := range []customer{{Country: "UK"}, {Country: "FR"}} {
		assert.Equal(t, leaf(c), orFold(c))
		assert.Equal(t, leaf(c), andFold(c))
	}
}

func TestFold_OrderInvariance(t *testing.T) {
	values := map[string]any{"Country": "UK", "City": "Seattle"}
	fields := customerFields()
	reversed := []NamedField[customer]{fields[1], fields[0]}

	forward, err := Fold(fields, Or[customer], False[customer](), equalityBuilder(values))
	assert.NoError(t, err)
	backward, err := Fold(reversed, Or[customer], False[customer](), equalityBuilder(values))
	assert.NoError(t, err)

	records := []customer{
		{Country: "UK", City: "Paris"},
		{Country: "FR", City: "Seattle"},
		{Country: "FR", City: "Paris"},
		{Country: "UK", City: "Seattle"},
	}
	for _, c := range records {
		assert.Equal(t, forward(c), backward(c))
	}
}

func TestFold_BuildFailureAborts(t *testing.T) {
	buildErr := errors.New("no input available")
	calls := 0
	p, err := Fold(customerFields(), Or[customer], False[customer](), func(f NamedField[customer]) (Predicate[customer], error) {
		calls++
		if f.Name == "Country" {
			return nil, buildErr
		}
		return f.Eq("Seattle"), nil
	})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, buildErr)
	assert.Contains(t, err.Error(), "Country")
	// The fold stops at the first failure.
	assert.Equal(t, 1, calls)
}

func TestFoldValues(t *testing.T) {
	fields := customerFields()
	clauses := []Clause[customer]{
		{Field: fields[0], Value: "UK"},
		{Field: fields[1], Value: "Seattle"},
	}

	p := FoldValues(clauses, Or[customer], False[customer](), NamedField[customer].Contains)
	assert.True(t, p(customer{Country: "UK", City: "Paris"}))
	assert.True(t, p(customer{Country: "FR", City: "Seattle"}))
	assert.False(t, p(customer{Country: "FR", City: "Paris"}))

	empty := FoldValues(nil, And[customer], True[customer](), NamedField[customer].Eq)
	assert.True(t, empty(customer{}))
}

func TestChain(t *testing.T) {
	isUK := func(c customer) bool { return c.Country == "UK" }
	inSeattle := func(c customer) bool { return c.City == "Seattle" }

	both := Chain(And[customer], True[customer](), isUK, inSeattle)
	assert.True(t, both(customer{Country: "UK", City: "Seattle"}))
	assert.False(t, both(customer{Country: "UK", City: "Paris"}))

	neither := Chain(Or[customer], False[customer]())
	assert.False(t, neither(customer{Country: "UK", City: "Seattle"}))
}
