// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

// History receives the serialized view state after every filter pass.
// Implementations replace the current entry; they never push a new one.
type History interface {
	ReplaceState(fragment string)
}

// NopHistory discards every update.
type NopHistory struct{}

func (NopHistory) ReplaceState(string) {}

// RecordingHistory keeps the single current entry and counts replacements.
type RecordingHistory struct {
	Current      string
	Replacements int
}

func (h *RecordingHistory) ReplaceState(fragment string) {
	h.Current = fragment
	h.Replacements++
}
