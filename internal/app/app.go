// Package app wires configuration, collaborators and HTTP routing for the
// card server.
package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"rsccard/internal/card"
	"rsccard/internal/config"
	"rsccard/internal/datefmt"
	"rsccard/internal/middleware"
	"rsccard/internal/thumbnail"
	"rsccard/internal/ui"
)

// Deps holds what main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// App holds the wired renderer and HTTP handler.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *card.Renderer
	Handler  *ui.Handler
}

// NewRenderer builds a card renderer from the rendering settings in cfg.
func NewRenderer(cfg *config.Config) *card.Renderer {
	return card.NewRenderer(
		thumbnail.Resolver{Server: cfg.ConnectServer},
		datefmt.New(cfg.DateLayout, cfg.Location()),
		thumbnail.View{FallbackBase: ui.FallbackImagePath},
	)
}

// New wires the application from deps.
func New(deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	renderer := NewRenderer(deps.Cfg)
	return &App{
		Cfg:      deps.Cfg,
		Logger:   logger,
		Renderer: renderer,
		Handler:  ui.NewHandler(renderer, logger, deps.Cfg.MaxBodyBytes),
	}
}

// Router returns the HTTP handler with the middleware stack applied. ctx bounds
// background work such as rate-limiter eviction.
func (a *App) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(a.Logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.Cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimiter(ctx, middleware.RateLimitConfig{
		RequestsPerSecond: a.Cfg.RateLimitRPS,
		Burst:             a.Cfg.RateLimitBurst,
	}))
	ui.MountRoutes(r, a.Handler)
	return r
}
