package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsccard/internal/domain"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		data       string
		wantFields []string
		wantErr    string
	}{
		{name: "json", format: "json", data: `{"b": [1], "a": [2]}`, wantFields: []string{"b", "a"}},
		{name: "yaml upper case", format: " YAML ", data: "b: [1]\na: [2]\n", wantFields: []string{"b", "a"}},
		{name: "invalid json", format: "json", data: `[`, wantErr: "not valid JSON"},
		{name: "unknown format", format: "csv", data: `a,b`, wantErr: `unsupported table format "csv"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(tt.format, []byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.Contains(t, err.Error(), tt.wantErr)
				var ve *domain.ValidationError
				assert.True(t, errors.As(err, &ve))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFields, got.Fields())
		})
	}
}
