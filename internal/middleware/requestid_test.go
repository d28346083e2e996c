package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureRequestID(headerID string) (captured string, rec *httptest.ResponseRecorder) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if headerID != "" {
		req.Header.Set("X-Request-ID", headerID)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return captured, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	id, rec := captureRequestID("")

	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_HeaderValidation(t *testing.T) {
	tests := []struct {
		name     string
		headerID string
		keep     bool
	}{
		{name: "alphanumeric with separators", headerID: "abc-123_DEF", keep: true},
		{name: "max length", headerID: strings.Repeat("a", 128), keep: true},
		{name: "too long", headerID: strings.Repeat("a", 129)},
		{name: "newline injection", headerID: "id\nINJECTED: 1"},
		{name: "spaces", headerID: "id with spaces"},
		{name: "markup", headerID: "<b>id</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, rec := captureRequestID(tt.headerID)
			require.NotEmpty(t, id)
			assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
			if tt.keep {
				assert.Equal(t, tt.headerID, id)
			} else {
				assert.NotEqual(t, tt.headerID, id)
			}
		})
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
