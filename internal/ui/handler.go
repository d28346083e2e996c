// Package ui serves the card grid over HTTP.
package ui

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"rsccard/internal/card"
	"rsccard/internal/domain"
	"rsccard/internal/middleware"
	"rsccard/internal/table"

	gomponents "maragu.dev/gomponents"
)

const defaultMaxBodyBytes = 8 << 20

// Handler serves card fragments and widget pages.
type Handler struct {
	Renderer     *card.Renderer
	Logger       *slog.Logger
	MaxBodyBytes int64
}

// NewHandler returns a Handler. A nil logger discards logs and a non-positive
// body limit selects 8 MiB.
func NewHandler(renderer *card.Renderer, logger *slog.Logger, maxBodyBytes int64) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{Renderer: renderer, Logger: logger, MaxBodyBytes: maxBodyBytes}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// cardsFromRequest decodes the posted table and renders it. Any failure means
// no cards at all.
func (h *Handler) cardsFromRequest(w http.ResponseWriter, r *http.Request) ([]card.Card, error) {
	t, err := h.readTable(w, r)
	if err != nil {
		return nil, err
	}
	records, err := table.ToRecords(t)
	if err != nil {
		return nil, err
	}
	return h.Renderer.RenderCards(records), nil
}

func (h *Handler) readTable(w http.ResponseWriter, r *http.Request) (table.Table, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, domain.ErrValidation("invalid Content-Type %q", ct)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(h.MaxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, readError(err)
		}
		format := table.FormatJSON
		if strings.EqualFold(r.PostFormValue("format"), table.FormatYAML) {
			format = table.FormatYAML
		}
		return table.Decode(format, []byte(strings.TrimSpace(r.PostFormValue("table"))))
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, readError(err)
	}
	switch mediaType {
	case "application/json", "text/json":
		return table.Decode(table.FormatJSON, body)
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return table.Decode(table.FormatYAML, body)
	default:
		return nil, domain.ErrValidation("unsupported Content-Type %q: send application/json or application/yaml", mediaType)
	}
}

type tooLargeError struct{ err error }

func (e *tooLargeError) Error() string { return "request body too large" }
func (e *tooLargeError) Unwrap() error { return e.err }

func readError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return &tooLargeError{err: err}
	}
	return domain.ErrValidation("read request body: %v", err)
}

// errorStatus maps an error to its HTTP status, title and user-facing message.
func errorStatus(err error) (int, string, string) {
	var shape *domain.ShapeError
	var validation *domain.ValidationError
	var tooLarge *tooLargeError
	switch {
	case errors.As(err, &shape):
		return http.StatusBadRequest, "Invalid Table", shape.Error()
	case errors.As(err, &validation):
		return http.StatusBadRequest, "Invalid Request", validation.Error()
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "Request Too Large", tooLarge.Error()
	default:
		return http.StatusInternalServerError, "Unexpected Error", "An unexpected error occurred while rendering the cards."
	}
}

func (h *Handler) logError(r *http.Request, status int, err error) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Logger.Log(r.Context(), level, "render failed",
		"path", r.URL.Path,
		"status", status,
		"error", err,
		"request_id", middleware.RequestIDFromContext(r.Context()),
	)
}

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, title, message := errorStatus(err)
	h.logError(r, status, err)
	renderHTML(w, status, errorPage(title, message))
}
