// Package table converts column-oriented tables into ordered records.
package table

import "rsccard/internal/domain"

// Table is a column-oriented data set: one sequence of values per field.
type Table interface {
	// Fields returns the field names in a stable order.
	Fields() []string
	// Column returns the values of field. ok is false when the field value is
	// not a sequence.
	Column(field string) (values []any, ok bool)
}

// ToRecords turns t into one record per row, in row order. Every field must be
// a sequence and all sequences must share one length; otherwise a
// *domain.ShapeError is returned and no records are produced. A table without
// fields yields an empty slice.
func ToRecords(t Table) ([]domain.Record, error) {
	fields := t.Fields()
	columns := make([][]any, len(fields))
	length := -1
	for i, field := range fields {
		values, ok := t.Column(field)
		if !ok {
			return nil, domain.ErrShape(field, "all fields must be arrays")
		}
		if length >= 0 && len(values) != length {
			return nil, domain.ErrShape(field, "all fields must be arrays of the same length")
		}
		length = len(values)
		columns[i] = values
	}

	if length < 0 {
		return []domain.Record{}, nil
	}

	records := make([]domain.Record, length)
	for row := 0; row < length; row++ {
		item := make(domain.Record, len(fields))
		for col, field := range fields {
			item[field] = columns[col][row]
		}
		records[row] = item
	}
	return records, nil
}
