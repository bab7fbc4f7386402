// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package filter matches proposals against a search and status selection.
package filter

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/danielhkuo/proposal-browser/models"
)

var (
	idListPattern = regexp.MustCompile(`(?i)^\s*SE-\d{4}(\s*,\s*SE-\d{4})*\s*$`)
	idPattern     = regexp.MustCompile(`(?i)SE-\d{4}`)
)

// Selection is the user-controlled part of the view: search text plus the
// checked status and version boxes.
type Selection struct {
	Search   string
	Statuses []string // state class names, e.g. "active-review"
	Versions []string // implementation versions, e.g. "5", "4.2", "Next"
}

// Empty reports whether the selection filters nothing out.
func (s Selection) Empty() bool {
	return strings.TrimSpace(s.Search) == "" && len(s.Statuses) == 0 && len(s.Versions) == 0
}

// IsIDList reports whether text is a comma-separated list of proposal IDs.
func IsIDList(text string) bool {
	return idListPattern.MatchString(text)
}

// ParseIDList returns the upper-cased IDs of an ID-list search, or nil.
func ParseIDList(text string) []string {
	if !IsIDList(text) {
		return nil
	}
	ids := idPattern.FindAllString(text, -1)
	for i := range ids {
		ids[i] = strings.ToUpper(ids[i])
	}
	return ids
}

// Matcher is a compiled Selection. A Matcher is not safe for concurrent use.
type Matcher struct {
	ids      map[string]bool
	terms    []string
	states   map[models.State]bool
	versions map[string]bool
	folder   cases.Caser
}

func Compile(sel Selection) *Matcher {
	m := &Matcher{folder: cases.Fold()}

	if ids := ParseIDList(sel.Search); ids != nil {
		m.ids = make(map[string]bool, len(ids))
		for _, id := range ids {
			m.ids[id] = true
		}
	} else {
		for _, term := range strings.Fields(sel.Search) {
			m.terms = append(m.terms, m.fold(term))
		}
	}

	for _, class := range sel.Statuses {
		if s, ok := models.StateForClass(class); ok {
			if m.states == nil {
				m.states = make(map[models.State]bool)
			}
			m.states[s.FilterGroup()] = true
		}
	}

	if len(sel.Versions) > 0 {
		m.versions = make(map[string]bool, len(sel.Versions))
		for _, v := range sel.Versions {
			m.versions[v] = true
		}
		if m.states == nil {
			m.states = make(map[models.State]bool)
		}
		m.states[models.StateImplemented] = true
	}

	return m
}

func (m *Matcher) fold(s string) string {
	return m.folder.String(norm.NFC.String(s))
}

// Match applies the full predicate: search, then status, then version.
func (m *Matcher) Match(p *models.Proposal) bool {
	return m.matchSearch(p) && m.matchStatus(p) && m.matchVersion(p)
}

func (m *Matcher) matchSearch(p *models.Proposal) bool {
	if m.ids != nil {
		return m.ids[p.ID]
	}
	if len(m.terms) == 0 {
		return true
	}

	fields := searchableFields(p)
	for i := range fields {
		fields[i] = m.fold(fields[i])
	}

	for _, term := range m.terms {
		if !slices.ContainsFunc(fields, func(f string) bool { return strings.Contains(f, term) }) {
			return false
		}
	}
	return true
}

func (m *Matcher) matchStatus(p *models.Proposal) bool {
	if len(m.states) == 0 {
		return true
	}
	return m.states[p.Status.State.FilterGroup()]
}

// matchVersion only restricts implemented proposals.
func (m *Matcher) matchVersion(p *models.Proposal) bool {
	if len(m.versions) == 0 || p.Status.State != models.StateImplemented {
		return true
	}
	return m.versions[p.Status.Version]
}

// searchableFields lists every string a search term may match against.
func searchableFields(p *models.Proposal) []string {
	fields := []string{p.ID, p.Title, p.Status.State.Name(), p.Status.Version}
	if p.ReviewManager != nil {
		fields = append(fields, p.ReviewManager.Name)
	}
	for _, a := range p.Authors {
		fields = append(fields, a.Name, a.Link)
	}
	for _, impl := range p.Implementation {
		fields = append(fields, impl.Account, impl.Repository, impl.ID)
	}
	for _, bug := range p.TrackingBugs {
		fields = append(fields, bug.Link, bug.Status, bug.ID, bug.Assignee)
	}
	return fields
}

// Apply returns the proposals matching sel, preserving input order.
func Apply(proposals []*models.Proposal, sel Selection) []*models.Proposal {
	m := Compile(sel)
	matched := make([]*models.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if m.Match(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
