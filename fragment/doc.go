// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fragment encodes the filter selection as a URL fragment.

	#?proposal=SE-0001,SE-0002&status=active-review,rejected&version=5&search=floating+point

Keys are emitted in that order and only when they carry a value. proposal
is used instead of search when the search text is a list of proposal IDs.
status holds state class names; implemented is implied (and left out)
whenever version is present. Encoding is canonical: statuses follow the
checkbox order and versions are newest first, so equal selections always
encode to the same string.

Decode is lenient. It accepts the string with or without "#" and "?", and
silently skips unknown keys, pairs without "=", unknown statuses and
values that fail to unescape.
*/
package fragment
