package table

import (
	"reflect"
	"sort"
)

// Columns is an in-memory table keyed by field name. Values are expected to be
// slices or arrays; anything else fails ToRecords. A nil slice is an empty
// column, an untyped nil is not a column at all.
type Columns map[string]any

// Fields returns the field names sorted, so validation order is deterministic.
func (c Columns) Fields() []string {
	fields := make([]string, 0, len(c))
	for k := range c {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// Column implements Table.
func (c Columns) Column(field string) ([]any, bool) {
	return sequence(c[field])
}

func sequence(v any) ([]any, bool) {
	if values, ok := v.([]any); ok {
		return values, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return values, true
}
