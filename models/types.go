// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type SaveViewRequest struct {
	Fragment string `json:"fragment"`
}

// Response types

type ProposalListResponse struct {
	Count       int         `json:"count"`
	Total       int         `json:"total"`
	Fragment    string      `json:"fragment"`
	Description string      `json:"description"`
	Proposals   []*Proposal `json:"proposals"`
}

type FragmentResponse struct {
	Fragment string `json:"fragment"`
	Query    string `json:"query"`
}

type SaveViewResponse struct {
	Slug     string `json:"slug"`
	URL      string `json:"url"`
	Fragment string `json:"fragment"`
	Created  bool   `json:"created"`
}

// Domain types

type SavedView struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Fragment  string    `json:"fragment"`
	Hits      int64     `json:"hits"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
