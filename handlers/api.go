// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/proposal-browser/catalog"
	"github.com/danielhkuo/proposal-browser/cliparse"
	"github.com/danielhkuo/proposal-browser/fragment"
	"github.com/danielhkuo/proposal-browser/metrics"
	"github.com/danielhkuo/proposal-browser/middleware"
	"github.com/danielhkuo/proposal-browser/models"
)

type APIHandler struct {
	src     Source
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewAPIHandler(src Source, cfg cliparse.Config, m *metrics.Metrics) *APIHandler {
	return &APIHandler{src: src, cfg: cfg, metrics: m}
}

// ListProposals handles GET /api/proposals
// Accepts the fragment keys (proposal, status, version, search) as query parameters
func (h *APIHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	b := h.src.session(r, h.cfg, h.metrics)
	if b.Failed() {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, catalog.FailureMessage)
		return
	}

	vm := b.View()
	middleware.JSONResponse(w, http.StatusOK, models.ProposalListResponse{
		Count:       vm.Matched,
		Total:       vm.Total,
		Fragment:    vm.Fragment,
		Description: vm.Description,
		Proposals:   b.Matched(),
	})
}

// GetProposal handles GET /api/proposals/{id}
func (h *APIHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	if h.src.Err != nil || h.src.Catalog == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, catalog.FailureMessage)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	p, ok := h.src.Catalog.Lookup(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Proposal not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, p)
}

// GetFragment handles GET /api/fragment
// Returns the canonical fragment for the selection in the query
func (h *APIHandler) GetFragment(w http.ResponseWriter, r *http.Request) {
	frag := fragment.Encode(fragment.FromQuery(r.URL.Query()))
	middleware.JSONResponse(w, http.StatusOK, models.FragmentResponse{
		Fragment: frag,
		Query:    strings.TrimPrefix(frag, fragment.Prefix),
	})
}
