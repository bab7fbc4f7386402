// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/proposal-browser/cliparse"
	"github.com/danielhkuo/proposal-browser/metrics"
	"github.com/danielhkuo/proposal-browser/middleware"
	"github.com/danielhkuo/proposal-browser/render"
)

type PageHandler struct {
	src      Source
	cfg      cliparse.Config
	renderer *render.Renderer
	metrics  *metrics.Metrics
}

func NewPageHandler(src Source, cfg cliparse.Config, renderer *render.Renderer, m *metrics.Metrics) *PageHandler {
	return &PageHandler{src: src, cfg: cfg, renderer: renderer, metrics: m}
}

// GetPage handles GET /
// Renders every proposal; those outside the query's selection are hidden
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	b := h.src.session(r, h.cfg, h.metrics)

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, b.View()); err != nil {
		slog.Error("failed to render page", "error", err, "request_id", middleware.RequestID(r.Context()))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if b.Failed() {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
