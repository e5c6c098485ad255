package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedField_Eq(t *testing.T) {
	country := Field("Country", func(c customer) any { return c.Country })
	age := Field("Age", func(c customer) any { return c.Age })

	assert.True(t, country.Eq("UK")(customer{Country: "UK"}))
	assert.False(t, country.Eq("UK")(customer{Country: "FR"}))

	// Numeric values compare by magnitude regardless of Go type.
	assert.True(t, age.Eq(int64(30))(customer{Age: 30}))
	assert.True(t, age.Eq(30.0)(customer{Age: 30}))
	assert.False(t, age.Eq(31)(customer{Age: 30}))
}

func TestNamedField_Neq(t *testing.T) {
	country := Field("Country", func(c customer) any { return c.Country })
	assert.False(t, country.Neq("UK")(customer{Country: "UK"}))
	assert.True(t, country.Neq("UK")(customer{Country: "FR"}))
}

func TestNamedField_OrderedComparisons(t *testing.T) {
	age := Field("Age", func(c customer) any { return c.Age })

	tests := []struct {
		name     string
		pred     Predicate[customer]
		age      int
		expected bool
	}{
		{"lt true", age.Lt(30), 20, true},
		{"lt false", age.Lt(30), 30, false},
		{"lte boundary", age.Lte(30), 30, true},
		{"gt true", age.Gt(30), 31, true},
		{"gt false", age.Gt(30), 30, false},
		{"gte boundary", age.Gte(30), 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pred(customer{Age: tt.age}))
		})
	}
}

func TestNamedField_NonNumericComparisonNeverMatches(t *testing.T) {
	country := Field("Country", func(c customer) any { return c.Country })
	assert.False(t, country.Gt(10)(customer{Country: "UK"}))
	assert.False(t, country.Lt(10)(customer{Country: "UK"}))
}

func TestNamedField_StringMatchers(t *testing.T) {
	city := Field("City", func(c customer) any { return c.City })
	c := customer{City: "Seattle"}

	assert.True(t, city.Contains("att")(c))
	assert.False(t, city.Contains("Paris")(c))
	assert.False(t, city.NotContains("att")(c))
	assert.True(t, city.NotContains("Paris")(c))
	assert.True(t, city.StartsWith("Sea")(c))
	assert.False(t, city.StartsWith("ttle")(c))
	assert.True(t, city.EndsWith("ttle")(c))
	assert.False(t, city.EndsWith("Sea")(c))
}

func TestNamedField_StringMatchOnNonStringNeverMatches(t *testing.T) {
	age := Field("Age", func(c customer) any { return c.Age })
	assert.False(t, age.Contains("3")(customer{Age: 30}))
	assert.False(t, age.NotContains("3")(customer{Age: 30}))
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{"int", 42, 42, true},
		{"int64", int64(42), 42, true},
		{"float32", float32(1.5), 1.5, true},
		{"float64", 1.5, 1.5, true},
		{"numeric string", "3.14", 3.14, true},
		{"non-numeric string", "abc", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
