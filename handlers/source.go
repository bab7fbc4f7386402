// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/proposal-browser/catalog"
	"github.com/danielhkuo/proposal-browser/cliparse"
	"github.com/danielhkuo/proposal-browser/filter"
	"github.com/danielhkuo/proposal-browser/fragment"
	"github.com/danielhkuo/proposal-browser/metrics"
	"github.com/danielhkuo/proposal-browser/view"
)

// Source is the outcome of loading the proposal feed at startup. Exactly
// one of Catalog and Err is set.
type Source struct {
	Catalog *catalog.Catalog
	Err     error
}

// session builds a browser for one request and applies the query state.
func (s Source) session(r *http.Request, cfg cliparse.Config, m *metrics.Metrics) *view.Browser {
	limit := cfg.DescriptionLimit
	if isCompact(r) {
		limit = filter.CompactDescriptionLimit
	}

	opts := []view.Option{view.WithDescriptionLimit(limit)}
	if m != nil {
		opts = append(opts, view.WithObserver(m.ObserveFilter))
	}

	var b *view.Browser
	if s.Err != nil || s.Catalog == nil {
		b = view.NewFailed(s.Err, opts...)
	} else {
		b = view.New(s.Catalog, opts...)
	}

	q := r.URL.Query()
	if sel := fragment.FromQuery(q); !sel.Empty() {
		b.Apply(sel)
	}
	if q.Get(view.ToggleParam) == "off" {
		b.ToggleFiltering()
	}
	return b
}

// isCompact guesses a narrow viewport from the User-Agent
func isCompact(r *http.Request) bool {
	return strings.Contains(r.UserAgent(), "Mobile")
}
