// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides slug generation and hashing utilities for saved views.

# View Slugs

Slugs create URL-friendly identifiers for saved views:

	slug := auth.GenerateViewSlug(fragment, salt)

Slugs are base62 encoded (alphanumeric only) and deterministic: the same
canonical fragment and salt always produce the same slug, so saving a view
twice finds the existing row. ValidateSlug rejects anything GenerateViewSlug
could not have produced before it reaches the database.

# IP Hashing

Saved views record who created them without storing addresses:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
