// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fragment

import (
	"net/url"
	"slices"
	"strings"

	"github.com/danielhkuo/proposal-browser/filter"
	"github.com/danielhkuo/proposal-browser/models"
)

// Recognized keys.
const (
	KeyProposal = "proposal"
	KeyStatus   = "status"
	KeyVersion  = "version"
	KeySearch   = "search"
)

// Prefix starts every non-empty fragment.
const Prefix = "#?"

// Encode serializes a selection as "#?key=value&...". An empty selection
// encodes to "". Statuses are emitted in filter order; "implemented" is
// left out whenever versions are present.
func Encode(sel filter.Selection) string {
	q := Query(sel)
	if q == "" {
		return ""
	}
	return Prefix + q
}

// Query is Encode without the "#?" prefix, usable as a URL query string.
func Query(sel filter.Selection) string {
	var parts []string

	if ids := filter.ParseIDList(sel.Search); ids != nil {
		parts = append(parts, KeyProposal+"="+strings.Join(ids, ","))
	}

	statuses := canonicalStatuses(sel.Statuses)
	versions := canonicalVersions(sel.Versions)
	if len(versions) > 0 {
		statuses = slices.DeleteFunc(statuses, func(c string) bool {
			return c == models.StateImplemented.Class()
		})
	}
	if len(statuses) > 0 {
		parts = append(parts, KeyStatus+"="+strings.Join(statuses, ","))
	}
	if len(versions) > 0 {
		escaped := make([]string, len(versions))
		for i, v := range versions {
			escaped[i] = url.QueryEscape(v)
		}
		parts = append(parts, KeyVersion+"="+strings.Join(escaped, ","))
	}

	if search := strings.TrimSpace(sel.Search); search != "" && !filter.IsIDList(search) {
		parts = append(parts, KeySearch+"="+url.QueryEscape(search))
	}

	return strings.Join(parts, "&")
}

// Decode parses a fragment. It accepts "#?a=b", "?a=b", "#a=b" and "a=b".
// Unknown keys, pairs without "=" and undecodable values are ignored.
func Decode(s string) filter.Selection {
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(s, "?")

	values := url.Values{}
	for _, pair := range strings.Split(s, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		if key == KeySearch {
			unescaped, err := url.QueryUnescape(value)
			if err != nil {
				continue
			}
			values.Add(key, unescaped)
			continue
		}
		for _, item := range strings.Split(value, ",") {
			unescaped, err := url.QueryUnescape(item)
			if err != nil {
				continue
			}
			values.Add(key, unescaped)
		}
	}
	return FromQuery(values)
}

// FromQuery builds a selection from query values. Each key may repeat
// (form checkboxes) or hold a comma-separated list (shared links).
// A proposal list takes precedence over free-text search.
func FromQuery(values url.Values) filter.Selection {
	var sel filter.Selection

	var ids []string
	for _, id := range splitAll(values[KeyProposal]) {
		if filter.IsIDList(id) {
			ids = append(ids, strings.ToUpper(strings.TrimSpace(id)))
		}
	}
	if len(ids) > 0 {
		sel.Search = strings.Join(ids, ",")
	} else if search := values.Get(KeySearch); search != "" {
		sel.Search = search
	}

	sel.Versions = canonicalVersions(splitAll(values[KeyVersion]))
	sel.Statuses = canonicalStatuses(splitAll(values[KeyStatus]))
	if len(sel.Versions) > 0 && !slices.Contains(sel.Statuses, models.StateImplemented.Class()) {
		sel.Statuses = canonicalStatuses(append(sel.Statuses, models.StateImplemented.Class()))
	}

	return sel
}

func splitAll(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// canonicalStatuses maps classes onto their checkbox (filter group),
// dropping unknown ones, deduplicated and in filter order.
func canonicalStatuses(classes []string) []string {
	groups := make(map[models.State]bool)
	for _, c := range classes {
		if s, ok := models.StateForClass(c); ok {
			groups[s.FilterGroup()] = true
		}
	}

	var out []string
	for _, s := range models.FilterStates {
		if groups[s] {
			out = append(out, s.Class())
		}
	}
	return out
}

// canonicalVersions deduplicates versions, newest first.
func canonicalVersions(versions []string) []string {
	var out []string
	for _, v := range versions {
		v = strings.TrimSpace(v)
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b string) int {
		return models.CompareVersions(b, a)
	})
	return out
}
