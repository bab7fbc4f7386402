// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// State is the lifecycle stage of a proposal.
type State int

const (
	StateUnknown State = iota
	StateAwaitingReview
	StateScheduledForReview
	StateActiveReview
	StateReturnedForRevision
	StateWithdrawn
	StateDeferred
	StateAccepted
	StateAcceptedWithRevisions
	StateRejected
	StateImplemented
	StateError
)

type stateInfo struct {
	key   string // feed form, e.g. ".activeReview"
	name  string
	short string
	class string
	group State
}

var stateTable = map[State]stateInfo{
	StateAwaitingReview:        {".awaitingReview", "Awaiting Review", "Awaiting Review", "awaiting-review", StateAwaitingReview},
	StateScheduledForReview:    {".scheduledForReview", "Scheduled for Review", "Scheduled", "scheduled-for-review", StateScheduledForReview},
	StateActiveReview:          {".activeReview", "Active Review", "Active Review", "active-review", StateActiveReview},
	StateReturnedForRevision:   {".returnedForRevision", "Returned for Revision", "Returned", "returned-for-revision", StateReturnedForRevision},
	StateWithdrawn:             {".withdrawn", "Withdrawn", "Withdrawn", "withdrawn", StateWithdrawn},
	StateDeferred:              {".deferred", "Deferred", "Deferred", "deferred", StateDeferred},
	StateAccepted:              {".accepted", "Accepted", "Accepted", "accepted", StateAccepted},
	StateAcceptedWithRevisions: {".acceptedWithRevisions", "Accepted with Revisions", "Accepted", "accepted-with-revisions", StateAccepted},
	StateRejected:              {".rejected", "Rejected", "Rejected", "rejected", StateRejected},
	StateImplemented:           {".implemented", "Implemented", "Implemented", "implemented", StateImplemented},
	StateError:                 {".error", "Error", "Error", "error", StateError},
}

// PresentationOrder is the fixed order in which status sections are rendered.
var PresentationOrder = []State{
	StateAwaitingReview,
	StateScheduledForReview,
	StateActiveReview,
	StateAccepted,
	StateAcceptedWithRevisions,
	StateImplemented,
	StateReturnedForRevision,
	StateDeferred,
	StateRejected,
	StateWithdrawn,
}

// FilterStates are the states offered as status checkboxes.
// Accepted with Revisions is folded into Accepted.
var FilterStates = []State{
	StateAwaitingReview,
	StateScheduledForReview,
	StateActiveReview,
	StateAccepted,
	StateImplemented,
	StateReturnedForRevision,
	StateDeferred,
	StateRejected,
	StateWithdrawn,
}

// Name returns the display name, e.g. "Accepted with Revisions".
func (s State) Name() string {
	if info, ok := stateTable[s]; ok {
		return info.name
	}
	return "Unknown"
}

// ShortName returns the compact label used for filter checkboxes.
func (s State) ShortName() string {
	if info, ok := stateTable[s]; ok {
		return info.short
	}
	return "Unknown"
}

// Class returns the CSS-safe class name, e.g. "active-review".
func (s State) Class() string {
	if info, ok := stateTable[s]; ok {
		return info.class
	}
	return "unknown"
}

// Key returns the dotted feed form, e.g. ".activeReview".
func (s State) Key() string {
	if info, ok := stateTable[s]; ok {
		return info.key
	}
	return ""
}

// FilterGroup returns the state a status checkbox selects this state under.
func (s State) FilterGroup() State {
	if info, ok := stateTable[s]; ok {
		return info.group
	}
	return StateUnknown
}

func (s State) String() string {
	return s.Name()
}

// ParseState accepts the feed key, the display name or the class name.
func ParseState(v string) (State, error) {
	v = strings.TrimSpace(v)
	for s, info := range stateTable {
		if v == info.key || strings.EqualFold(v, info.name) || v == info.class {
			return s, nil
		}
	}
	return StateUnknown, fmt.Errorf("unknown proposal state %q", v)
}

// StateForClass maps a checkbox class name back to its state.
func StateForClass(class string) (State, bool) {
	for s, info := range stateTable {
		if info.class == class {
			return s, true
		}
	}
	return StateUnknown, false
}

// UnmarshalJSON tolerates unknown states; they decode to StateUnknown.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, _ := ParseState(raw)
	*s = parsed
	return nil
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Key())
}

func (s State) MarshalYAML() (interface{}, error) {
	return s.Name(), nil
}
