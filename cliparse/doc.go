// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration for every command.

# Sources

Resolve merges, in increasing order of precedence:

  - Defaults()
  - a YAML file (--config / -c, or PROPOSAL_BROWSER_CONFIG)
  - environment variables
  - flags the user actually set

# CLI Flags

	-p, --port               Server port
	-u, --proposals-url      Feed URL or local JSON file
	    --proposal-base-url  Base URL for proposal links
	    --fetch-timeout      Timeout for the feed request
	    --description-limit  Named filters shown before "N Filters"
	-d, --database-url       Database URL
	-t, --database-type      sqlite or postgres
	    --slug-salt          Saved view slug salt
	-c, --config             YAML config file

# Environment Variables

	PORT, PROPOSALS_URL, PROPOSAL_BASE_URL, FETCH_TIMEOUT,
	DESCRIPTION_LIMIT, DATABASE_URL, DATABASE_TYPE, VIEW_SLUG_SALT

# Validation

Validate checks what every command needs. ValidateServe additionally
requires DATABASE_URL and VIEW_SLUG_SALT.
*/
package cliparse
