// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"slices"

	"github.com/danielhkuo/proposal-browser/catalog"
	"github.com/danielhkuo/proposal-browser/filter"
	"github.com/danielhkuo/proposal-browser/fragment"
	"github.com/danielhkuo/proposal-browser/models"
)

// ViewModel is everything the page template needs. Hidden proposals stay in
// the model with Visible set to false.
type ViewModel struct {
	Failed             bool
	CountLabel         string
	Matched            int
	Total              int
	Description        string
	FilteringEnabled   bool
	Search             string
	ClearButtonVisible bool
	Fragment           string
	ShareHref          string
	ClearHref          string
	ToggleHref         string
	Statuses           []Checkbox
	Versions           []Checkbox
	VersionsVisible    bool
	Sections           []Section
}

type Checkbox struct {
	Value   string
	Label   string
	Checked bool
}

type Section struct {
	State   models.State
	Title   string
	Class   string
	Visible bool
	Items   []Item
}

type Item struct {
	Proposal *models.Proposal
	Visible  bool
}

// View derives the view model from the current state.
func (b *Browser) View() ViewModel {
	vm := ViewModel{
		Failed:             b.Failed(),
		Matched:            len(b.matched),
		Total:              b.catalog.Len(),
		FilteringEnabled:   b.enabled,
		Search:             b.sel.Search,
		ClearButtonVisible: b.sel.Search != "",
		Fragment:           b.Fragment(),
	}
	b.links(&vm)

	if vm.Failed {
		vm.CountLabel = catalog.FailureMessage
		return vm
	}
	vm.CountLabel = filter.CountLabel(vm.Matched)
	if b.enabled {
		vm.Description = filter.Describe(b.sel, b.limit)
	}

	for _, s := range models.FilterStates {
		vm.Statuses = append(vm.Statuses, Checkbox{
			Value:   s.Class(),
			Label:   s.ShortName(),
			Checked: slices.Contains(b.sel.Statuses, s.Class()),
		})
	}
	vm.VersionsVisible = slices.Contains(b.sel.Statuses, models.StateImplemented.Class())
	for _, v := range b.catalog.Versions() {
		vm.Versions = append(vm.Versions, Checkbox{
			Value:   v,
			Label:   models.VersionLabel(v),
			Checked: slices.Contains(b.sel.Versions, v),
		})
	}

	for _, g := range b.catalog.Groups() {
		section := Section{
			State: g.State,
			Title: g.State.Name(),
			Class: g.State.Class(),
		}
		for _, p := range g.Proposals {
			visible := b.visible[p.ID]
			section.Items = append(section.Items, Item{Proposal: p, Visible: visible})
			section.Visible = section.Visible || visible
		}
		vm.Sections = append(vm.Sections, section)
	}

	return vm
}

// ToggleParam carries the suspended state in page links ("toggle=off").
const ToggleParam = "toggle"

func (b *Browser) links(vm *ViewModel) {
	vm.ShareHref = href(fragment.Query(b.sel))

	cleared := b.sel
	cleared.Search = ""
	vm.ClearHref = href(fragment.Query(cleared))

	full := b.sel
	if !b.enabled && b.stash != nil {
		full.Statuses = b.stash.statuses
		full.Versions = b.stash.versions
	}
	q := fragment.Query(full)
	if b.enabled {
		if q != "" {
			q += "&"
		}
		q += ToggleParam + "=off"
	}
	vm.ToggleHref = href(q)
}

func href(query string) string {
	if query == "" {
		return "/"
	}
	return "/?" + query
}

// HasFilters reports whether any status or version box is checked.
func (vm ViewModel) HasFilters() bool {
	for _, c := range vm.Statuses {
		if c.Checked {
			return true
		}
	}
	return false
}
