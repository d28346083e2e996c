package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsccard/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("CONNECT_SERVER", "https://connect.example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://host.example.com")
	t.Setenv("ENV", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("DATE_LAYOUT", "")
	t.Setenv("MAX_BODY_BYTES", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("TLS_CERT_FILE", "")
	t.Setenv("TLS_KEY_FILE", "")
	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	return cfg
}

func TestRouter_RendersCards(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a := New(Deps{Cfg: testConfig(t)})
	srv := httptest.NewServer(a.Router(ctx))
	defer srv.Close()

	body := `{"url":["https://connect.example.com/content/7/"],"guid":["g7"],"updated_time":["2021-03-01T12:00:00Z"],"title":["Report"]}`
	resp, err := http.Post(srv.URL+"/cards", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Limit"))

	var b strings.Builder
	_, err = io.Copy(&b, resp.Body)
	require.NoError(t, err)
	out := b.String()
	assert.Contains(t, out, `src="https://connect.example.com/__api__/applications/g7/image"`)
	assert.Contains(t, out, "<time>Mar 1, 2021</time>")
	assert.Contains(t, out, `data-fallback="/static/img/other.svg"`)
}

func TestRouter_CORS(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a := New(Deps{Cfg: testConfig(t)})
	h := a.Router(ctx)

	req := httptest.NewRequest(http.MethodOptions, "/cards", nil)
	req.Header.Set("Origin", "https://host.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://host.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_StaticAssets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a := New(Deps{Cfg: testConfig(t)})
	h := a.Router(ctx)

	for _, path := range []string{"/static/css/card.css", "/static/img/app.svg"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
