package domain

import "github.com/spf13/cast"

// Field names carried by content records.
const (
	FieldURL           = "url"
	FieldGUID          = "guid"
	FieldAppMode       = "app_mode"
	FieldOwnerUsername = "owner_username"
	FieldUpdatedTime   = "updated_time"
	FieldTitle         = "title"
	FieldName          = "name"
	FieldDescription   = "description"
)

// Record is one row of a column table, keyed by field name.
type Record map[string]any

// Value returns the raw value of field, or nil when the field is absent.
func (r Record) Value(field string) any {
	return r[field]
}

// Has reports whether field is present in the record, even with a nil value.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String returns field rendered as text. Absent and null values read as "".
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// Title returns the record title, falling back to its name when the title is
// absent or empty.
func (r Record) Title() string {
	if title := r.String(FieldTitle); title != "" {
		return title
	}
	return r.String(FieldName)
}
