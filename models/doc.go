// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the proposal feed records and the API types.

# Feed Records

  - Proposal: one record of the feed, with authors, review manager, status,
    tracking bugs and implementation links
  - Status: State plus version (Implemented) or review dates
  - State: closed set of lifecycle states; unknown feed values decode to
    StateUnknown instead of failing the whole feed

Each State has a display name, a short checkbox label, a CSS class and a
filter group (Accepted with Revisions is filtered as Accepted).

# API Types

  - SaveViewRequest / SaveViewResponse
  - ProposalListResponse, FragmentResponse
  - SavedView
  - ErrorResponse: error, message
*/
package models
