// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"slices"
	"strings"

	"github.com/danielhkuo/proposal-browser/catalog"
	"github.com/danielhkuo/proposal-browser/filter"
	"github.com/danielhkuo/proposal-browser/fragment"
	"github.com/danielhkuo/proposal-browser/models"
)

// Browser owns the state of one browsing session: the loaded catalog, the
// current selection, the suspended-filter stash and the derived visibility
// of every proposal. It is not safe for concurrent use.
type Browser struct {
	catalog *catalog.Catalog
	loadErr error

	sel      filter.Selection
	enabled  bool
	stash    *stash
	limit    int
	history  History
	observer func(matched, total int)

	visible map[string]bool
	matched []*models.Proposal
}

// stash holds the checkbox selection while filtering is suspended.
type stash struct {
	statuses []string
	versions []string
}

type Option func(*Browser)

func WithHistory(h History) Option {
	return func(b *Browser) {
		b.history = h
	}
}

// WithDescriptionLimit sets how many named filters the summary lists.
func WithDescriptionLimit(n int) Option {
	return func(b *Browser) {
		if n > 0 {
			b.limit = n
		}
	}
}

// WithObserver is called after every filter pass.
func WithObserver(fn func(matched, total int)) Option {
	return func(b *Browser) {
		b.observer = fn
	}
}

// New starts a session over a loaded catalog with nothing filtered.
func New(cat *catalog.Catalog, opts ...Option) *Browser {
	b := &Browser{
		catalog: cat,
		enabled: true,
		limit:   filter.DescriptionLimit,
		history: NopHistory{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.recompute()
	return b
}

// NewFailed starts a session whose feed could not be loaded.
func NewFailed(err error, opts ...Option) *Browser {
	b := New(catalog.New(nil), opts...)
	b.loadErr = err
	return b
}

func (b *Browser) Failed() bool {
	return b.loadErr != nil
}

// Err is the load error, if any.
func (b *Browser) Err() error {
	return b.loadErr
}

// Selection returns a copy of the current selection.
func (b *Browser) Selection() filter.Selection {
	return filter.Selection{
		Search:   b.sel.Search,
		Statuses: slices.Clone(b.sel.Statuses),
		Versions: slices.Clone(b.sel.Versions),
	}
}

// FilteringEnabled is false while the selection is stashed.
func (b *Browser) FilteringEnabled() bool {
	return b.enabled
}

// Restore applies state carried over from a previous visit in a single
// filter pass. Pre-filled search text is used unless the fragment carries
// its own search or proposal list. Nothing happens when both are empty.
func (b *Browser) Restore(search, frag string) {
	sel := fragment.Decode(frag)
	if strings.TrimSpace(sel.Search) == "" {
		sel.Search = search
	}
	if sel.Empty() {
		return
	}
	b.Apply(sel)
}

func (b *Browser) SetSearch(text string) {
	b.sel.Search = text
	b.refresh()
}

// ClearSearch empties the search field, which also hides the clear button.
func (b *Browser) ClearSearch() {
	b.SetSearch("")
}

// SetStatus checks or unchecks a status box by class name. Unchecking
// Implemented also unchecks every version. Unknown classes are ignored.
func (b *Browser) SetStatus(class string, on bool) {
	s, ok := models.StateForClass(class)
	if !ok {
		return
	}
	class = s.FilterGroup().Class()

	b.resume()
	if on {
		if !slices.Contains(b.sel.Statuses, class) {
			b.sel.Statuses = append(b.sel.Statuses, class)
		}
	} else {
		b.sel.Statuses = slices.DeleteFunc(b.sel.Statuses, func(c string) bool { return c == class })
		if class == models.StateImplemented.Class() {
			b.sel.Versions = nil
		}
	}
	b.refresh()
}

// SetVersion checks or unchecks a version box. Checking one also checks
// Implemented.
func (b *Browser) SetVersion(version string, on bool) {
	if version == "" {
		return
	}

	b.resume()
	if on {
		if !slices.Contains(b.sel.Versions, version) {
			b.sel.Versions = append(b.sel.Versions, version)
		}
		implemented := models.StateImplemented.Class()
		if !slices.Contains(b.sel.Statuses, implemented) {
			b.sel.Statuses = append(b.sel.Statuses, implemented)
		}
	} else {
		b.sel.Versions = slices.DeleteFunc(b.sel.Versions, func(v string) bool { return v == version })
	}
	b.refresh()
}

// ApplyFragment replaces the whole selection with the decoded fragment and
// runs a single filter pass once every key is applied.
func (b *Browser) ApplyFragment(frag string) {
	b.Apply(fragment.Decode(frag))
}

// Apply replaces the whole selection and runs a single filter pass.
func (b *Browser) Apply(sel filter.Selection) {
	b.sel = filter.Selection{
		Search:   sel.Search,
		Statuses: slices.Clone(sel.Statuses),
		Versions: slices.Clone(sel.Versions),
	}
	implemented := models.StateImplemented.Class()
	if len(b.sel.Versions) > 0 && !slices.Contains(b.sel.Statuses, implemented) {
		b.sel.Statuses = append(b.sel.Statuses, implemented)
	}
	b.enabled = true
	b.stash = nil
	b.refresh()
}

// ToggleFiltering suspends or resumes the checkbox selection. Suspending
// stashes the checked boxes and clears them; resuming checks them again.
// Only one level of suspension exists.
func (b *Browser) ToggleFiltering() {
	if b.enabled {
		b.stash = &stash{
			statuses: slices.Clone(b.sel.Statuses),
			versions: slices.Clone(b.sel.Versions),
		}
		b.sel.Statuses = nil
		b.sel.Versions = nil
		b.enabled = false
	} else {
		if b.stash != nil {
			b.sel.Statuses = b.stash.statuses
			b.sel.Versions = b.stash.versions
		}
		b.stash = nil
		b.enabled = true
	}
	b.refresh()
}

// resume leaves suspended mode without restoring the stash; used when the
// user starts checking boxes again.
func (b *Browser) resume() {
	b.enabled = true
	b.stash = nil
}

// Refresh reruns the filter pass with the current selection.
func (b *Browser) Refresh() {
	b.refresh()
}

func (b *Browser) refresh() {
	b.recompute()
	b.history.ReplaceState(b.Fragment())
	if b.observer != nil {
		b.observer(len(b.matched), b.catalog.Len())
	}
}

func (b *Browser) recompute() {
	b.matched = filter.Apply(b.catalog.Presentable(), b.sel)
	b.visible = make(map[string]bool, len(b.matched))
	for _, p := range b.matched {
		b.visible[p.ID] = true
	}
}

// Fragment serializes the current selection.
func (b *Browser) Fragment() string {
	return fragment.Encode(b.sel)
}

// Visible reports whether the proposal with the given ID is shown.
func (b *Browser) Visible(id string) bool {
	return b.visible[id]
}

// Matched returns the visible proposals in display order.
func (b *Browser) Matched() []*models.Proposal {
	return slices.Clone(b.matched)
}
