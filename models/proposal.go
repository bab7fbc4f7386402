// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DefaultProposalBaseURL is prefixed to a proposal's relative link.
const DefaultProposalBaseURL = "https://github.com/apple/swift-evolution/blob/main/proposals/"

const dateLayout = "2006-01-02"

// Proposal is one record of the proposal feed. Loaded proposals are never mutated.
type Proposal struct {
	ID             string            `json:"id" yaml:"id"`
	Title          string            `json:"title" yaml:"title"`
	Link           string            `json:"link" yaml:"link"`
	SHA            string            `json:"sha,omitempty" yaml:"-"`
	Authors        []Person          `json:"authors" yaml:"authors"`
	ReviewManager  *Person           `json:"reviewManager,omitempty" yaml:"reviewManager,omitempty"`
	Status         Status            `json:"status" yaml:"status"`
	TrackingBugs   []TrackingBug     `json:"trackingBugs,omitempty" yaml:"trackingBugs,omitempty"`
	Implementation []Implementation  `json:"implementation,omitempty" yaml:"implementation,omitempty"`
	Warnings       []json.RawMessage `json:"warnings,omitempty" yaml:"-"`
	Errors         []json.RawMessage `json:"errors,omitempty" yaml:"-"`
}

type Person struct {
	Name string `json:"name" yaml:"name"`
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Status carries the state plus the version (Implemented) or the review period.
type Status struct {
	State   State  `json:"state" yaml:"state"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Start   string `json:"start,omitempty" yaml:"start,omitempty"`
	End     string `json:"end,omitempty" yaml:"end,omitempty"`
}

type TrackingBug struct {
	ID       string `json:"id" yaml:"id"`
	Link     string `json:"link" yaml:"link"`
	Status   string `json:"status" yaml:"status"`
	Assignee string `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
}

type Implementation struct {
	Account    string `json:"account" yaml:"account"`
	Repository string `json:"repository" yaml:"repository"`
	Type       string `json:"type" yaml:"type"`
	ID         string `json:"id" yaml:"id"`
}

// Number returns the integer embedded in the ID ("SE-0042" -> 42), or 0.
func (p *Proposal) Number() int {
	_, digits, ok := strings.Cut(p.ID, "-")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// Malformed reports whether the feed flagged this record with errors.
func (p *Proposal) Malformed() bool {
	return len(p.Errors) > 0
}

// URL builds the canonical link to the proposal text.
func (p *Proposal) URL(base string) string {
	if base == "" {
		base = DefaultProposalBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(p.Link, "/")
}

// ReviewPeriod parses Start and End. ok is false unless both parse.
func (s Status) ReviewPeriod() (start, end time.Time, ok bool) {
	var err error
	if start, err = time.Parse(dateLayout, s.Start); err != nil {
		return time.Time{}, time.Time{}, false
	}
	if end, err = time.Parse(dateLayout, s.End); err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// URL links to the pull request, or to the commit for any other type.
func (i Implementation) URL() string {
	kind := "commit"
	if i.Type == "pull" {
		kind = "pull"
	}
	return "https://github.com/" + i.Account + "/" + i.Repository + "/" + kind + "/" + i.ID
}

// Label is "repo#123" for pull requests and "repo@abcdef0" for commits.
func (i Implementation) Label() string {
	if i.Type == "pull" {
		return i.Repository + "#" + i.ID
	}
	id := i.ID
	if len(id) > 7 {
		id = id[:7]
	}
	return i.Repository + "@" + id
}
