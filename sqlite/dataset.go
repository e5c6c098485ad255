package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asaidimu/go-sift/core/filter"
	"go.uber.org/zap"
)

// Dataset runs composed filters against one SQLite table through a
// Translator. It is read-only: schema management and writes are the owning
// application's concern.
type Dataset struct {
	db         *sql.DB
	translator *Translator
	logger     *zap.Logger
}

// NewDataset creates a dataset over an open database handle.
func NewDataset(db *sql.DB, translator *Translator, logger *zap.Logger) (*Dataset, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle cannot be nil")
	}
	if translator == nil {
		return nil, fmt.Errorf("translator cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dataset{db: db, translator: translator, logger: logger}, nil
}

// Select returns the records matching the filter, optionally restricted to
// the given columns.
func (d *Dataset) Select(ctx context.Context, f filter.Filter, columns ...string) ([]filter.Record, error) {
	query, params, err := d.translator.SelectSQL(f, columns...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SELECT SQL: %w", err)
	}
	d.logger.Debug("Executing select", zap.String("sql", query), zap.Any("params", params))

	rows, err := d.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return readRows(rows)
}

// Count returns the number of records matching the filter.
func (d *Dataset) Count(ctx context.Context, f filter.Filter) (int64, error) {
	whereSQL, params, err := d.translator.Where(f)
	if err != nil {
		return 0, fmt.Errorf("failed to translate filter: %w", err)
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s;", quoteIdentifier(d.translator.table), whereSQL)
	d.logger.Debug("Executing count", zap.String("sql", query), zap.Any("params", params))

	var count int64
	if err := d.db.QueryRowContext(ctx, query, params...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to execute count: %w", err)
	}
	return count, nil
}

// readRows scans every row into a generic record, converting byte slices to
// strings since SQLite reports TEXT columns as []byte.
func readRows(rows *sql.Rows) ([]filter.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var results []filter.Record
	for rows.Next() {
		record := make(filter.Record, len(columns))
		values := make([]any, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}

		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		for i, col := range columns {
			if byteVal, ok := values[i].([]byte); ok {
				record[col] = string(byteVal)
				continue
			}
			record[col] = values[i]
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return results, nil
}
