// Package sqlite provides a reference execution collaborator for composed
// filters: a translator that rewrites a filter tree into parameterized SQL,
// and a read-only dataset that runs the translated filter against an SQLite
// table. It demonstrates the translated-representation path; in-memory
// evaluation lives in core/filter.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/asaidimu/go-sift/core/filter"
)

// Translator is a table-aware rewriter of filter trees into SQLite SQL.
// When constructed with a column list it rejects conditions on unknown
// columns; without one, any field name is accepted as a column.
type Translator struct {
	table   string
	columns map[string]struct{}
}

// NewTranslator creates a translator for the given table. The column list is
// optional; pass none to accept any field name.
func NewTranslator(table string, columns ...string) (*Translator, error) {
	if table == "" {
		return nil, fmt.Errorf("table name cannot be empty")
	}
	t := &Translator{table: table}
	if len(columns) > 0 {
		t.columns = make(map[string]struct{}, len(columns))
		for _, c := range columns {
			t.columns[c] = struct{}{}
		}
	}
	return t, nil
}

// quoteIdentifier properly quotes an identifier for SQLite.
func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// columnSQL translates a field name into a quoted column accessor.
func (t *Translator) columnSQL(field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field name cannot be empty")
	}
	if t.columns != nil {
		if _, ok := t.columns[field]; !ok {
			return "", fmt.Errorf("field '%s' is not a column of table '%s'", field, t.table)
		}
	}
	return quoteIdentifier(field), nil
}

// Where translates a filter tree into a SQL boolean expression and its
// parameters. The expression is always non-empty: inert groups translate to
// constant truth values so identity semantics survive the rewrite.
func (t *Translator) Where(f filter.Filter) (string, []any, error) {
	var params []any
	sql, err := t.buildWhere(&f, &params)
	if err != nil {
		return "", nil, err
	}
	return sql, params, nil
}

// SelectSQL creates a complete SELECT statement for the filter. With no
// columns given it selects every column.
func (t *Translator) SelectSQL(f filter.Filter, columns ...string) (string, []any, error) {
	selectFields := []string{"*"}
	if len(columns) > 0 {
		selectFields = selectFields[:0]
		for _, col := range columns {
			accessor, err := t.columnSQL(col)
			if err != nil {
				return "", nil, fmt.Errorf("projection error: %w", err)
			}
			selectFields = append(selectFields, accessor)
		}
	}

	whereSQL, params, err := t.Where(f)
	if err != nil {
		return "", nil, fmt.Errorf("error building WHERE clause: %w", err)
	}

	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s;",
		strings.Join(selectFields, ", "), quoteIdentifier(t.table), whereSQL)
	return sql, params, nil
}

// buildWhere recursively builds the boolean expression for a filter node.
func (t *Translator) buildWhere(f *filter.Filter, params *[]any) (string, error) {
	if f.Condition != nil {
		return t.buildCondition(f.Condition, params)
	}
	if f.Group != nil {
		return t.buildGroup(f.Group, params)
	}
	return "", fmt.Errorf("invalid filter structure: neither Condition nor Group is set")
}

func (t *Translator) buildGroup(g *filter.Group, params *[]any) (string, error) {
	switch g.Operator {
	case filter.LogicalAnd, filter.LogicalOr:
		if len(g.Conditions) == 0 {
			// Empty groups keep their identity semantics in SQL.
			if g.Operator == filter.LogicalAnd {
				return "1=1", nil
			}
			return "1=0", nil
		}
		clauses := make([]string, 0, len(g.Conditions))
		for _, sub := range g.Conditions {
			clause, err := t.buildWhere(&sub, params)
			if err != nil {
				return "", err
			}
			clauses = append(clauses, clause)
		}
		op := strings.ToUpper(string(g.Operator))
		return fmt.Sprintf("(%s)", strings.Join(clauses, " "+op+" ")), nil
	case filter.LogicalNot:
		if len(g.Conditions) != 1 {
			return "", fmt.Errorf("not group requires exactly one condition, got %d", len(g.Conditions))
		}
		clause, err := t.buildWhere(&g.Conditions[0], params)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("NOT (%s)", clause), nil
	default:
		return "", fmt.Errorf("unsupported logical operator for SQL: %s", g.Operator)
	}
}

// buildCondition translates a single condition into a SQL expression.
func (t *Translator) buildCondition(cond *filter.Condition, params *[]any) (string, error) {
	accessor, err := t.columnSQL(cond.Field)
	if err != nil {
		return "", err
	}

	switch cond.Operator {
	case filter.ComparisonOperatorEq:
		*params = append(*params, cond.Value)
		return fmt.Sprintf("%s = ?", accessor), nil
	case filter.ComparisonOperatorNeq:
		*params = append(*params, cond.Value)
		return fmt.Sprintf("%s != ?", accessor), nil
	case filter.ComparisonOperatorLt:
		*params = append(*params, cond.Value)
		return fmt.Sprintf("%s < ?", accessor), nil
	case filter.ComparisonOperatorLte:
		*params = append(*params, cond.Value)
		return fmt.Sprintf("%s <= ?", accessor), nil
	case filter.ComparisonOperatorGt:
		*params = append(*params, cond.Value)
		return fmt.Sprintf("%s > ?", accessor), nil
	case filter.ComparisonOperatorGte:
		*params = append(*params, cond.Value)
		return fmt.Sprintf("%s >= ?", accessor), nil
	case filter.ComparisonOperatorIn, filter.ComparisonOperatorNin:
		vals := conditionValues(cond.Value)
		if len(vals) == 0 {
			// IN over the empty list matches nothing; NOT IN matches everything.
			if cond.Operator == filter.ComparisonOperatorIn {
				return "1=0", nil
			}
			return "1=1", nil
		}
		placeholders := strings.Repeat("?,", len(vals)-1) + "?"
		*params = append(*params, vals...)
		op := "IN"
		if cond.Operator == filter.ComparisonOperatorNin {
			op = "NOT IN"
		}
		return fmt.Sprintf("%s %s (%s)", accessor, op, placeholders), nil
	case filter.ComparisonOperatorContains:
		*params = append(*params, "%"+fmt.Sprintf("%v", cond.Value)+"%")
		return fmt.Sprintf("%s LIKE ?", accessor), nil
	case filter.ComparisonOperatorNotContains:
		*params = append(*params, "%"+fmt.Sprintf("%v", cond.Value)+"%")
		return fmt.Sprintf("%s NOT LIKE ?", accessor), nil
	case filter.ComparisonOperatorStartsWith:
		*params = append(*params, fmt.Sprintf("%v", cond.Value)+"%")
		return fmt.Sprintf("%s LIKE ?", accessor), nil
	case filter.ComparisonOperatorEndsWith:
		*params = append(*params, "%"+fmt.Sprintf("%v", cond.Value))
		return fmt.Sprintf("%s LIKE ?", accessor), nil
	case filter.ComparisonOperatorExists:
		return fmt.Sprintf("%s IS NOT NULL", accessor), nil
	case filter.ComparisonOperatorNotExists:
		return fmt.Sprintf("%s IS NULL", accessor), nil
	default:
		return "", fmt.Errorf("unsupported comparison operator for direct SQL: %s", cond.Operator)
	}
}

// conditionValues normalizes an in/nin condition value to a slice.
func conditionValues(v filter.Value) []any {
	switch vals := v.(type) {
	case []any:
		return vals
	case []filter.Value:
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
