// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		input string
		want  State
	}{
		{".activeReview", StateActiveReview},
		{"Active Review", StateActiveReview},
		{"active review", StateActiveReview},
		{"active-review", StateActiveReview},
		{".acceptedWithRevisions", StateAcceptedWithRevisions},
		{"Accepted with Revisions", StateAcceptedWithRevisions},
		{".implemented", StateImplemented},
		{"scheduled-for-review", StateScheduledForReview},
		{".error", StateError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseState(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseState(".previewing")
	assert.Error(t, err)
}

func TestStateUnmarshalJSON(t *testing.T) {
	var status Status
	require.NoError(t, json.Unmarshal([]byte(`{"state":".returnedForRevision"}`), &status))
	assert.Equal(t, StateReturnedForRevision, status.State)

	// unknown states decode without failing the whole record
	require.NoError(t, json.Unmarshal([]byte(`{"state":".somethingNew"}`), &status))
	assert.Equal(t, StateUnknown, status.State)

	assert.Error(t, json.Unmarshal([]byte(`{"state":42}`), &status))
}

func TestStateMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Status{State: StateImplemented, Version: "5"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":".implemented","version":"5"}`, string(data))
}

func TestStateTable(t *testing.T) {
	assert.Equal(t, "Accepted with Revisions", StateAcceptedWithRevisions.Name())
	assert.Equal(t, "accepted-with-revisions", StateAcceptedWithRevisions.Class())
	assert.Equal(t, StateAccepted, StateAcceptedWithRevisions.FilterGroup())
	assert.Equal(t, "Accepted", StateAcceptedWithRevisions.ShortName())

	assert.Equal(t, "Scheduled", StateScheduledForReview.ShortName())
	assert.Equal(t, "Unknown", StateUnknown.Name())
	assert.Equal(t, StateUnknown, StateUnknown.FilterGroup())

	for _, s := range FilterStates {
		assert.Equal(t, s, s.FilterGroup(), "checkbox %s must select itself", s)
		got, ok := StateForClass(s.Class())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	assert.NotContains(t, FilterStates, StateAcceptedWithRevisions)
	assert.NotContains(t, FilterStates, StateError)
}

func TestPresentationOrder(t *testing.T) {
	want := []string{
		"Awaiting Review",
		"Scheduled for Review",
		"Active Review",
		"Accepted",
		"Accepted with Revisions",
		"Implemented",
		"Returned for Revision",
		"Deferred",
		"Rejected",
		"Withdrawn",
	}

	var got []string
	for _, s := range PresentationOrder {
		got = append(got, s.Name())
	}
	assert.Equal(t, want, got)
}
