package table

import (
	"github.com/tidwall/gjson"

	"rsccard/internal/domain"
)

// JSON is a table decoded from a JSON object of columns. Field order follows
// the document.
type JSON struct {
	fields  []string
	columns map[string]gjson.Result
}

// FromJSON parses data as a JSON object mapping field names to arrays. Only
// the outer shape is checked here; array-ness of each field is left to
// ToRecords.
func FromJSON(data []byte) (*JSON, error) {
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrValidation("table is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, domain.ErrValidation("table must be a JSON object of columns")
	}

	t := &JSON{columns: map[string]gjson.Result{}}
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, dup := t.columns[name]; !dup {
			t.fields = append(t.fields, name)
		}
		t.columns[name] = value
		return true
	})
	return t, nil
}

// Fields implements Table.
func (t *JSON) Fields() []string { return t.fields }

// Column implements Table. Elements are decoded to plain Go values: strings,
// float64, bool, nil, maps and slices.
func (t *JSON) Column(field string) ([]any, bool) {
	col, ok := t.columns[field]
	if !ok || !col.IsArray() {
		return nil, false
	}
	elems := col.Array()
	values := make([]any, len(elems))
	for i, e := range elems {
		values[i] = e.Value()
	}
	return values, true
}
