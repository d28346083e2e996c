package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rsccard/internal/ui/assets"
)

// MountRoutes registers the card endpoints and static assets on r.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.Home)
	r.Get("/healthz", h.Health)
	r.Post("/cards", h.Cards)
	r.Post("/widget", h.Widget)
}
