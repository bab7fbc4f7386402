// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog loads the proposal feed and holds the working set.
package catalog

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/danielhkuo/proposal-browser/models"
)

// FailureMessage replaces the proposal count when the feed cannot be loaded.
const FailureMessage = "Proposal data failed to load."

var ErrFetch = errors.New("failed to fetch proposals")

// Catalog is the immutable working set: malformed records removed,
// newest proposal first.
type Catalog struct {
	proposals []*models.Proposal
	byID      map[string]*models.Proposal
	dropped   int
}

// Group is one status section of the rendered list.
type Group struct {
	State     models.State
	Proposals []*models.Proposal
}

// Fetch issues a single GET for the proposal feed. There is no retry.
func Fetch(ctx context.Context, client *http.Client, url string) ([]models.Proposal, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	records, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return records, nil
}

// Decode parses a JSON array of proposal records.
func Decode(r io.Reader) ([]models.Proposal, error) {
	var records []models.Proposal
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode proposals: %w", err)
	}
	return records, nil
}

// Load fetches the feed from an http(s) URL, or reads it from a local path.
func Load(ctx context.Context, client *http.Client, source string) (*Catalog, error) {
	var (
		records []models.Proposal
		err     error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		records, err = Fetch(ctx, client, source)
	} else {
		records, err = readFile(strings.TrimPrefix(source, "file://"))
	}
	if err != nil {
		return nil, err
	}

	c := New(records)
	slog.Info("proposals loaded", "source", source, "count", c.Len(), "dropped", c.Dropped())
	return c, nil
}

func readFile(path string) ([]models.Proposal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return records, nil
}

// New drops records carrying errors and orders the rest by descending number.
// Records with equal numbers keep their feed order.
func New(records []models.Proposal) *Catalog {
	c := &Catalog{
		proposals: make([]*models.Proposal, 0, len(records)),
		byID:      make(map[string]*models.Proposal, len(records)),
	}

	for i := range records {
		p := records[i]
		if p.Malformed() {
			c.dropped++
			slog.Debug("dropping malformed proposal", "id", p.ID)
			continue
		}
		c.proposals = append(c.proposals, &p)
	}

	slices.SortStableFunc(c.proposals, func(a, b *models.Proposal) int {
		return cmp.Compare(b.Number(), a.Number())
	})

	for _, p := range c.proposals {
		if _, seen := c.byID[p.ID]; !seen {
			c.byID[p.ID] = p
		}
	}

	return c
}

// Proposals returns the working set in display order.
// The slice is a copy; the proposals themselves must not be modified.
func (c *Catalog) Proposals() []*models.Proposal {
	return slices.Clone(c.proposals)
}

func (c *Catalog) Len() int {
	return len(c.proposals)
}

// Dropped is the number of malformed records removed at load.
func (c *Catalog) Dropped() int {
	return c.dropped
}

func (c *Catalog) Lookup(id string) (*models.Proposal, bool) {
	p, ok := c.byID[strings.ToUpper(id)]
	return p, ok
}

// Groups returns one section per presentation state, in presentation order.
// Proposals in any other state (Error, unknown) are not part of any group.
func (c *Catalog) Groups() []Group {
	groups := make([]Group, 0, len(models.PresentationOrder))
	index := make(map[models.State]int, len(models.PresentationOrder))
	for _, s := range models.PresentationOrder {
		index[s] = len(groups)
		groups = append(groups, Group{State: s})
	}

	for _, p := range c.proposals {
		i, ok := index[p.Status.State]
		if !ok {
			continue
		}
		groups[i].Proposals = append(groups[i].Proposals, p)
	}
	return groups
}

// Presentable returns the proposals that belong to a presentation group, in
// display order. These are the only proposals a page can show.
func (c *Catalog) Presentable() []*models.Proposal {
	var out []*models.Proposal
	for _, p := range c.proposals {
		if slices.Contains(models.PresentationOrder, p.Status.State) {
			out = append(out, p)
		}
	}
	return out
}

// Versions lists the distinct versions of implemented proposals, newest
// first with "Next" ahead of every released version.
func (c *Catalog) Versions() []string {
	seen := make(map[string]bool)
	var versions []string
	for _, p := range c.proposals {
		v := p.Status.Version
		if p.Status.State != models.StateImplemented || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		versions = append(versions, v)
	}

	slices.SortFunc(versions, func(a, b string) int {
		return models.CompareVersions(b, a)
	})
	return versions
}
