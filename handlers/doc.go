// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the proposal browser.

# Handler Types

  - PageHandler: The proposal list page
  - APIHandler: JSON access to the proposals and fragment encoding
  - ViewsHandler: Saved views and their short links

Handlers are created via constructor functions:

	pageHandler := handlers.NewPageHandler(src, cfg, renderer, m)
	viewsHandler := handlers.NewViewsHandler(db, cfg)

# Sessions

The catalog is loaded once and shared read-only. Each page or list request
builds its own view.Browser from the query string (the same keys as the
fragment: proposal, status, version, search) so requests never share
filter state. toggle=off suspends the checked boxes, and a User-Agent
containing "Mobile" gets the compact filter description.

# Saved Views

	POST /api/views  {"fragment": "#?status=active-review"}

The fragment is canonicalized before it is hashed, so equivalent
selections share one slug. Saving an existing view returns 200 with
created=false; a new one returns 201.
*/
package handlers
