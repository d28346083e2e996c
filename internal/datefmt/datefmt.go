// Package datefmt renders record timestamps as short localized dates.
package datefmt

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DefaultLayout is the short date form, e.g. "Mar 1, 2021".
const DefaultLayout = "Jan 2, 2006"

// InvalidDate is rendered for values that cannot be read as a timestamp.
const InvalidDate = "Invalid Date"

// Formatter renders timestamps in a fixed layout and location.
type Formatter struct {
	Layout   string
	Location *time.Location
}

// New returns a Formatter. An empty layout selects DefaultLayout and a nil
// location selects UTC.
func New(layout string, loc *time.Location) *Formatter {
	if layout == "" {
		layout = DefaultLayout
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{Layout: layout, Location: loc}
}

// FormatShort formats ts. Numbers are epoch milliseconds, strings are parsed
// as ISO-8601 date or date-time. A nil value formats as "".
func (f *Formatter) FormatShort(ts any) string {
	if ts == nil {
		return ""
	}
	t, ok := Parse(ts)
	if !ok {
		return InvalidDate
	}
	return t.In(f.location()).Format(f.layout())
}

func (f *Formatter) layout() string {
	if f.Layout == "" {
		return DefaultLayout
	}
	return f.Layout
}

func (f *Formatter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// Parse reads ts as a point in time.
func Parse(ts any) (time.Time, bool) {
	switch v := ts.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case string:
		return parseString(v)
	case json.Number:
		ms, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)), true
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		ms, err := cast.ToInt64E(v)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms), true
	default:
		return time.Time{}, false
	}
}

func parseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := cast.ToTimeInDefaultLocationE(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
