// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view holds the state of one browsing session.

A Browser owns the current Selection, whether filtering is suspended, and
the derived visibility of every proposal. Every mutation runs one filter
pass and then hands the new fragment to a History, which replaces the
current entry rather than pushing a new one.

View derives a ViewModel with everything a renderer needs: the count or
failure message, the filter description, checkbox states, share links and
one section per status with hidden proposals still present.
*/
package view
