// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/danielhkuo/proposal-browser/cliparse"
	"github.com/danielhkuo/proposal-browser/handlers"
	"github.com/danielhkuo/proposal-browser/metrics"
	"github.com/danielhkuo/proposal-browser/middleware"
	"github.com/danielhkuo/proposal-browser/render"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, src handlers.Source, m *metrics.Metrics) (*http.ServeMux, error) {
	renderer, err := render.New(cfg.ProposalBaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(src, cfg, renderer, m)
	apiHandler := handlers.NewAPIHandler(src, cfg, m)
	viewsHandler := handlers.NewViewsHandler(db, cfg)

	route := func(pattern string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m, pattern, h))
	}
	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.CORS(route(pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Proposal list page
	mux.HandleFunc("GET /{$}", route("GET /", pageHandler.GetPage))

	// JSON API (public, read-only)
	api("GET /api/proposals", apiHandler.ListProposals)
	api("GET /api/proposals/{id}", apiHandler.GetProposal)
	api("GET /api/fragment", apiHandler.GetFragment)

	// Saved views
	api("POST /api/views", viewsHandler.SaveView)
	api("GET /api/views/{slug}", viewsHandler.GetView)
	mux.HandleFunc("GET /v/{slug}", route("GET /v/{slug}", viewsHandler.OpenView))

	// Preflight for the JSON API
	mux.Handle("OPTIONS /api/", middleware.CORS(http.NotFoundHandler()))

	return mux, nil
}
