// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the proposal browser.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux, err := router.NewRouter(db, cfg, src, m)

src is the result of the single startup fetch. When it failed, the page
and the proposal API answer 503 with "Proposal data failed to load."

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Page:

	GET /?search=...&status=...&version=...&proposal=...&toggle=off

JSON API (public, CORS enabled):

	GET  /api/proposals       - Matching proposals, same query keys as the page
	GET  /api/proposals/{id}  - One proposal
	GET  /api/fragment        - Canonical fragment for a query
	POST /api/views           - Save a view
	GET  /api/views/{slug}    - Saved view details

Short links:

	GET /v/{slug} - Redirect to the page with the saved selection

Every route except health and metrics is wrapped with request logging and
per-route metrics.
*/
package router
