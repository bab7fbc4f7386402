// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fragment

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/proposal-browser/filter"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		sel  filter.Selection
		want string
	}{
		{"empty", filter.Selection{}, ""},
		{"search", filter.Selection{Search: "floating point"}, "#?search=floating+point"},
		{"whitespace-only search", filter.Selection{Search: "  \t "}, ""},
		{"search is trimmed", filter.Selection{Search: " floating point  "}, "#?search=floating+point"},
		{"search with separators", filter.Selection{Search: "a&b=c,d"}, "#?search=a%26b%3Dc%2Cd"},
		{"id list", filter.Selection{Search: "se-0001, SE-0002"}, "#?proposal=SE-0001,SE-0002"},
		{"statuses in filter order", filter.Selection{Statuses: []string{"rejected", "active-review"}}, "#?status=active-review,rejected"},
		{"accepted with revisions folds", filter.Selection{Statuses: []string{"accepted-with-revisions"}}, "#?status=accepted"},
		{"unknown status dropped", filter.Selection{Statuses: []string{"bogus"}}, ""},
		{"implemented omitted with versions", filter.Selection{Statuses: []string{"implemented"}, Versions: []string{"4.2", "5"}}, "#?version=5,4.2"},
		{"implemented kept without versions", filter.Selection{Statuses: []string{"implemented"}}, "#?status=implemented"},
		{
			name: "key order",
			sel: filter.Selection{
				Search:   "doug",
				Statuses: []string{"rejected", "implemented"},
				Versions: []string{"Next"},
			},
			want: "#?status=rejected&version=Next&search=doug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.sel))
		})
	}
}

func TestQueryHasNoPrefix(t *testing.T) {
	assert.Equal(t, "status=deferred", Query(filter.Selection{Statuses: []string{"deferred"}}))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  filter.Selection
	}{
		{"empty", "", filter.Selection{}},
		{"bare hash", "#", filter.Selection{}},
		{"search", "#?search=floating+point", filter.Selection{Search: "floating point"}},
		{"search keeps commas", "#?search=a%2Cb", filter.Selection{Search: "a,b"}},
		{"no question mark", "#status=deferred", filter.Selection{Statuses: []string{"deferred"}}},
		{"no prefix", "status=deferred", filter.Selection{Statuses: []string{"deferred"}}},
		{"proposal wins over search", "#?proposal=se-0001,SE-0002&search=doug", filter.Selection{Search: "SE-0001,SE-0002"}},
		{"invalid proposal ignored", "#?proposal=nope&search=doug", filter.Selection{Search: "doug"}},
		{"version implies implemented", "#?version=5", filter.Selection{Statuses: []string{"implemented"}, Versions: []string{"5"}}},
		{"unknown keys ignored", "#?foo=bar&status=deferred", filter.Selection{Statuses: []string{"deferred"}}},
		{"pairs without value ignored", "#?status&search=x", filter.Selection{Search: "x"}},
		{"bad escape ignored", "#?search=%ZZ&status=rejected", filter.Selection{Statuses: []string{"rejected"}}},
		{"unknown status ignored", "#?status=bogus,rejected", filter.Selection{Statuses: []string{"rejected"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	selections := []filter.Selection{
		{Search: "floating point"},
		{Search: "SE-0001,SE-0002"},
		{Search: "100% & more"},
		{Statuses: []string{"active-review", "rejected"}},
		{Statuses: []string{"implemented", "rejected"}, Versions: []string{"Next", "5", "4.2"}},
		{Search: "doug", Statuses: []string{"awaiting-review"}},
	}

	for _, sel := range selections {
		encoded := Encode(sel)
		assert.Equal(t, sel, Decode(encoded), encoded)
		assert.Equal(t, encoded, Encode(Decode(encoded)))
	}
}

func TestFromQuery(t *testing.T) {
	values := url.Values{
		KeyStatus:  {"rejected", "accepted-with-revisions"},
		KeyVersion: {"4.2", "5", "5"},
		KeySearch:  {"doug"},
	}

	assert.Equal(t, filter.Selection{
		Search:   "doug",
		Statuses: []string{"accepted", "implemented", "rejected"},
		Versions: []string{"5", "4.2"},
	}, FromQuery(values))

	assert.Equal(t, filter.Selection{}, FromQuery(url.Values{}))
}
