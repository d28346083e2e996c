package table

import (
	"context"
	"database/sql"
	"fmt"
)

// Frame is an ordered in-memory table whose columns are always sequences.
type Frame struct {
	fields  []string
	columns map[string][]any
}

// NewFrame returns an empty frame with the given fields.
func NewFrame(fields ...string) *Frame {
	f := &Frame{columns: make(map[string][]any, len(fields))}
	for _, name := range fields {
		if _, dup := f.columns[name]; dup {
			continue
		}
		f.fields = append(f.fields, name)
		f.columns[name] = []any{}
	}
	return f
}

// Fields implements Table.
func (f *Frame) Fields() []string { return f.fields }

// Column implements Table.
func (f *Frame) Column(field string) ([]any, bool) {
	values, ok := f.columns[field]
	return values, ok
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.fields) == 0 {
		return 0
	}
	return len(f.columns[f.fields[0]])
}

// AppendRow adds one row; values are matched to fields by position.
func (f *Frame) AppendRow(values ...any) error {
	if len(values) != len(f.fields) {
		return fmt.Errorf("row has %d values, frame has %d fields", len(values), len(f.fields))
	}
	for i, name := range f.fields {
		f.columns[name] = append(f.columns[name], values[i])
	}
	return nil
}

// Querier runs a query returning rows. *sql.DB, *sql.Conn and *sql.Tx satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Query runs query against q and collects the result set into a frame.
func Query(ctx context.Context, q Querier, query string, args ...any) (*Frame, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	return FromRows(rows)
}

// FromRows drains rows into a frame, one column per result column. Byte
// slices are stored as strings.
func FromRows(rows *sql.Rows) (*Frame, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	f := NewFrame(cols...)
	if len(f.fields) != len(cols) {
		return nil, fmt.Errorf("result set has duplicate column names: %v", cols)
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", f.Len(), err)
		}
		row := make([]any, len(vals))
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[i] = v
		}
		if err := f.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return f, nil
}
