// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/proposal-browser/auth"
	"github.com/danielhkuo/proposal-browser/cliparse"
	"github.com/danielhkuo/proposal-browser/db"
	"github.com/danielhkuo/proposal-browser/fragment"
	"github.com/danielhkuo/proposal-browser/middleware"
	"github.com/danielhkuo/proposal-browser/models"
)

type ViewsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewViewsHandler(db *sql.DB, cfg cliparse.Config) *ViewsHandler {
	return &ViewsHandler{db: db, cfg: cfg}
}

func (h *ViewsHandler) q(query string) string {
	return db.Rebind(h.cfg.DatabaseType, query)
}

// SaveView handles POST /api/views
// Stores a canonical fragment under a deterministic slug; saving the same
// view twice returns the existing slug
func (h *ViewsHandler) SaveView(w http.ResponseWriter, r *http.Request) {
	var req models.SaveViewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	canonical := fragment.Encode(fragment.Decode(req.Fragment))
	if canonical == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "fragment selects nothing")
		return
	}

	slug := auth.GenerateViewSlug(canonical, h.cfg.ViewSlugSalt)
	response := models.SaveViewResponse{
		Slug:     slug,
		URL:      "/v/" + slug,
		Fragment: canonical,
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.ViewSlugSalt)
	result, err := h.db.Exec(h.q(`
		INSERT INTO saved_view (id, slug, fragment, ip_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (slug) DO NOTHING
	`), uuid.NewString(), slug, canonical, ipHash, time.Now().Unix())
	if err != nil {
		slog.Error("failed to insert saved view", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save view")
		return
	}

	// Slugs are deterministic; a conflict means the view is already stored
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		middleware.JSONResponse(w, http.StatusOK, response)
		return
	}

	slog.Info("view saved", "slug", slug, "fragment", canonical, "request_id", middleware.RequestID(r.Context()))
	response.Created = true
	middleware.JSONResponse(w, http.StatusCreated, response)
}

// GetView handles GET /api/views/{slug}
func (h *ViewsHandler) GetView(w http.ResponseWriter, r *http.Request) {
	view, ok := h.lookup(w, r, r.PathValue("slug"))
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}

// OpenView handles GET /v/{slug}
// Redirects to the page with the saved selection as query string
func (h *ViewsHandler) OpenView(w http.ResponseWriter, r *http.Request) {
	view, ok := h.lookup(w, r, r.PathValue("slug"))
	if !ok {
		return
	}

	_, err := h.db.Exec(h.q(`UPDATE saved_view SET hits = hits + 1 WHERE id = ?`), view.ID)
	if err != nil {
		slog.Error("failed to count saved view hit", "error", err, "request_id", middleware.RequestID(r.Context()))
	}

	http.Redirect(w, r, "/?"+strings.TrimPrefix(view.Fragment, fragment.Prefix), http.StatusFound)
}

// lookup loads a saved view or writes the error response
func (h *ViewsHandler) lookup(w http.ResponseWriter, r *http.Request, slug string) (models.SavedView, bool) {
	var view models.SavedView
	if err := auth.ValidateSlug(slug); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "View not found")
		return view, false
	}

	var createdAt int64
	err := h.db.QueryRow(h.q(`
		SELECT id, slug, fragment, hits, created_at
		FROM saved_view
		WHERE slug = ?
	`), slug).Scan(&view.ID, &view.Slug, &view.Fragment, &view.Hits, &createdAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "View not found")
		return view, false
	}
	if err != nil {
		slog.Error("failed to query saved view", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return view, false
	}

	view.CreatedAt = time.Unix(createdAt, 0).UTC()
	return view, true
}
