// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package render writes proposal listings as HTML, text, JSON or YAML.
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/proposal-browser/models"
	"github.com/danielhkuo/proposal-browser/view"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

// Renderer writes proposal listings as HTML pages or plain text.
type Renderer struct {
	baseURL string
	now     func() time.Time
	page    *template.Template
}

// New parses the page template. baseURL prefixes proposal links; now is
// the clock used for relative review dates (time.Now when nil).
func New(baseURL string, now func() time.Time) (*Renderer, error) {
	if now == nil {
		now = time.Now
	}
	r := &Renderer{baseURL: baseURL, now: now}

	funcs := template.FuncMap{
		"proposalURL":  func(p *models.Proposal) string { return p.URL(r.baseURL) },
		"statusDetail": StatusDetail,
		"reviewEnds":   func(s models.Status) string { return ReviewEnds(s, r.now()) },
	}
	page, err := template.New("page.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	r.page = page
	return r, nil
}

type pageData struct {
	View view.ViewModel
}

// Page renders the full HTML document for a view model.
func (r *Renderer) Page(w io.Writer, vm view.ViewModel) error {
	if err := r.page.Execute(w, pageData{View: vm}); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Text writes one tab-aligned line per proposal followed by a count line.
func (r *Renderer) Text(w io.Writer, proposals []*models.Proposal) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	now := r.now()
	for _, p := range proposals {
		status := StatusDetail(p.Status)
		if ends := ReviewEnds(p.Status, now); ends != "" {
			status += ", ends " + ends
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, status, p.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	noun := "proposals"
	if len(proposals) == 1 {
		noun = "proposal"
	}
	_, err := fmt.Fprintf(w, "%s %s\n", humanize.Comma(int64(len(proposals))), noun)
	return err
}

// JSON writes the proposals as an indented JSON array.
func JSON(w io.Writer, proposals []*models.Proposal) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if proposals == nil {
		proposals = []*models.Proposal{}
	}
	return enc.Encode(proposals)
}

// YAML writes the proposals as a YAML sequence.
func YAML(w io.Writer, proposals []*models.Proposal) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(proposals); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
