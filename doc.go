// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Swift Evolution proposal browser.

The browser loads the proposal feed once at startup, then serves a single
page listing every proposal grouped by status. Search text and status and
version checkboxes hide the proposals that do not match; the selection is
kept in the URL so a filtered view can be shared.

# Commands

	proposal-browser serve                  # HTTP server (page, JSON API, saved views)
	proposal-browser list floating point    # print matching proposals
	proposal-browser fragment encode --status implemented --version 5

Global flags:

  - --format: text, json or yaml (default: text)
  - -v, --verbose: debug logging

# Configuration

Settings come from, in increasing precedence: built-in defaults, a YAML file
(--config or PROPOSAL_BROWSER_CONFIG), environment variables and flags.
A .env file in the working directory is loaded first if present.

Required for serve:

  - VIEW_SLUG_SALT (--slug-salt): Secret for saved view slugs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - PROPOSALS_URL (-u): Feed URL or local JSON file
  - DATABASE_TYPE (-t) / DATABASE_URL (-d): sqlite (default) or postgres
  - FETCH_TIMEOUT: Timeout for the one feed request (default: 15s)

# Architecture

  - catalog: Feed loading and the immutable working set
  - filter: Search and status matching, filter descriptions
  - fragment: The "#?key=value" view state encoding
  - view: Per-session browser state and the derived view model
  - render: HTML page, text, JSON and YAML output
  - handlers / router / middleware: HTTP surface
  - db / auth: Saved views and their slugs
  - metrics: Prometheus collectors
  - cliparse / cli: Configuration and commands

See package documentation for each component.
*/
package main
