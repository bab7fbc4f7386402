// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/proposal-browser/models"
)

const (
	// DescriptionLimit is the number of named filters shown before the
	// description collapses to a count.
	DescriptionLimit = 2
	// CompactDescriptionLimit applies to narrow (mobile) viewports.
	CompactDescriptionLimit = 1
)

// Describe builds the "Filtered by" summary for the checked boxes.
func Describe(sel Selection, limit int) string {
	selected := make(map[models.State]bool)
	for _, class := range sel.Statuses {
		if s, ok := models.StateForClass(class); ok {
			selected[s.FilterGroup()] = true
		}
	}
	if len(sel.Versions) > 0 {
		selected[models.StateImplemented] = true
	}

	var names []string
	for _, s := range models.FilterStates {
		if selected[s] {
			names = append(names, s.ShortName())
		}
	}
	var versionNames []string
	for _, v := range sel.Versions {
		versionNames = append(versionNames, models.VersionLabel(v))
	}
	names = append(names, versionNames...)
	total := len(names)

	if len(versionNames) > 0 && len(versionNames) <= limit {
		collapsed := names[:0:0]
		for _, n := range names {
			if n != models.StateImplemented.ShortName() && !strings.HasPrefix(n, "Swift ") {
				collapsed = append(collapsed, n)
			}
		}
		names = append(collapsed, "Implemented ("+strings.Join(versionNames, ", ")+")")
	}

	switch {
	case len(names) > limit:
		return fmt.Sprintf("%d Filters", total)
	case len(names) == 0:
		return "All Statuses"
	default:
		return strings.Join(names, " or ")
	}
}

// CountLabel renders the visible proposal count.
func CountLabel(n int) string {
	if n == 1 {
		return "1 proposal"
	}
	return fmt.Sprintf("%d proposals", n)
}
