// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"cmp"
	"strconv"
	"strings"
)

// VersionNext is the placeholder version for unreleased implementations.
const VersionNext = "Next"

// VersionLabel renders an implementation version for display ("Swift 5").
func VersionLabel(version string) string {
	return "Swift " + version
}

// CompareVersions orders dotted version strings numerically; "Next" sorts
// above every numeric version.
func CompareVersions(a, b string) int {
	if a == b {
		return 0
	}
	if a == VersionNext {
		return 1
	}
	if b == VersionNext {
		return -1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < max(len(as), len(bs)); i++ {
		var x, y int
		if i < len(as) {
			x, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			y, _ = strconv.Atoi(bs[i])
		}
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}
