// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/proposal-browser/models"
)

// StatusDetail is the one-line status shown next to a proposal, e.g.
// "Implemented (Swift 5)" or "Active Review (March 1 – 10, 2024)".
func StatusDetail(s models.Status) string {
	switch s.State {
	case models.StateImplemented:
		if s.Version != "" {
			return s.State.Name() + " (" + models.VersionLabel(s.Version) + ")"
		}
	case models.StateActiveReview, models.StateScheduledForReview:
		if period := ReviewPeriod(s); period != "" {
			return s.State.Name() + " (" + period + ")"
		}
	}
	return s.State.Name()
}

// ReviewPeriod formats the review dates, eliding the repeated month and year.
func ReviewPeriod(s models.Status) string {
	start, end, ok := s.ReviewPeriod()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(start.Format("January 2"))
	if start.Year() != end.Year() {
		b.WriteString(start.Format(", 2006"))
	}
	b.WriteString(" – ")
	if start.Month() != end.Month() || start.Year() != end.Year() {
		b.WriteString(end.Format("January "))
	}
	b.WriteString(end.Format("2, 2006"))
	return b.String()
}

// ReviewEnds describes the end of the review relative to now ("3 days from
// now"). It is empty outside of review states.
func ReviewEnds(s models.Status, now time.Time) string {
	if s.State != models.StateActiveReview && s.State != models.StateScheduledForReview {
		return ""
	}
	_, end, ok := s.ReviewPeriod()
	if !ok {
		return ""
	}
	return humanize.RelTime(end, now, "ago", "from now")
}
