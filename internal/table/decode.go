package table

import (
	"strings"

	"rsccard/internal/domain"
)

// Formats accepted by Decode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Decode parses data as a column table in the named format.
func Decode(format string, data []byte) (Table, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		t, err := FromJSON(data)
		if err != nil {
			return nil, err
		}
		return t, nil
	case FormatYAML:
		t, err := FromYAML(data)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, domain.ErrValidation("unsupported table format %q: use json or yaml", format)
	}
}
