package database

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/tabular"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ReadTable loads every row of a reference table with its columns in
// database order. The column names go through the same header
// normalization as CSV files.
func (db *DB) ReadTable(ctx context.Context, name string) (tabular.Table, error) {
	if !identifierPattern.MatchString(name) {
		return tabular.Table{}, fmt.Errorf("invalid table name %q", name)
	}

	rows, err := db.WithContext(ctx).Raw("SELECT * FROM " + quoteTable(name)).Rows()
	if err != nil {
		return tabular.Table{}, fmt.Errorf("query table %s: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return tabular.Table{}, fmt.Errorf("read columns of %s: %w", name, err)
	}

	table := tabular.NewTable(columns)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return tabular.Table{}, fmt.Errorf("scan row of %s: %w", name, err)
		}
		table.Rows = append(table.Rows, toRow(columns, values))
	}
	if err := rows.Err(); err != nil {
		return tabular.Table{}, fmt.Errorf("iterate %s: %w", name, err)
	}

	db.logger.WithField("table", name).WithField("rows", table.Len()).Debug("reference table loaded")
	return table, nil
}

// quoteTable quotes each part of a possibly schema-qualified table name.
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}
	return strings.Join(parts, ".")
}

func toRow(columns []string, values []interface{}) tabular.Row {
	row := make(tabular.Row, len(columns))
	for i, col := range columns {
		switch v := values[i].(type) {
		case []byte:
			row[col] = string(v)
		default:
			row[col] = v
		}
	}
	return row
}
