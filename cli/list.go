// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/proposal-browser/catalog"
	"github.com/danielhkuo/proposal-browser/cliparse"
	"github.com/danielhkuo/proposal-browser/filter"
	"github.com/danielhkuo/proposal-browser/render"
	"github.com/danielhkuo/proposal-browser/view"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	Statuses []string
	Versions []string
	Fragment string
	Compact  bool
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	listOpts := &ListOptions{}
	var flags *cliparse.Flags

	cmd := &cobra.Command{
		Use:   "list [search terms...]",
		Short: "Print the proposals matching a search and status filters",
		Example: `  proposal-browser list floating point
  proposal-browser list SE-0001,SE-0002
  proposal-browser list --status implemented --version 5
  proposal-browser list --fragment '#?status=active-review'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve()
			if err != nil {
				return err
			}

			src := loadSource(cmd.Context(), cfg, nil)
			if src.Err != nil {
				return errors.New(catalog.FailureMessage)
			}

			limit := cfg.DescriptionLimit
			if listOpts.Compact {
				limit = filter.CompactDescriptionLimit
			}
			b := view.New(src.Catalog, view.WithDescriptionLimit(limit))
			applyListSelection(b, listOpts, strings.Join(args, " "))

			return writeList(cmd.OutOrStdout(), opts.Format, cfg, b)
		},
	}

	cmd.Flags().StringSliceVarP(&listOpts.Statuses, "status", "s", nil, "status classes to include (e.g. active-review,implemented)")
	cmd.Flags().StringSliceVar(&listOpts.Versions, "version", nil, "implementation versions to include (e.g. 5,4.2)")
	cmd.Flags().StringVarP(&listOpts.Fragment, "fragment", "f", "", "apply a shared fragment (#?status=...)")
	cmd.Flags().BoolVar(&listOpts.Compact, "compact", false, "use the compact filter description")
	flags = cliparse.AddFlags(cmd.Flags())

	return cmd
}

// applyListSelection mirrors the page: a fragment restores the whole
// state, then explicit flags and search terms are applied on top.
func applyListSelection(b *view.Browser, opts *ListOptions, search string) {
	b.Restore("", opts.Fragment)
	if search != "" {
		b.SetSearch(search)
	}
	for _, s := range opts.Statuses {
		b.SetStatus(s, true)
	}
	for _, v := range opts.Versions {
		b.SetVersion(v, true)
	}
}

func writeList(w io.Writer, format string, cfg cliparse.Config, b *view.Browser) error {
	matched := b.Matched()
	switch format {
	case "json":
		return render.JSON(w, matched)
	case "yaml":
		return render.YAML(w, matched)
	}

	renderer, err := render.New(cfg.ProposalBaseURL, nil)
	if err != nil {
		return err
	}
	if err := renderer.Text(w, matched); err != nil {
		return err
	}

	vm := b.View()
	if vm.Description != "" {
		fmt.Fprintf(w, "Filtered by: %s\n", vm.Description)
	}
	if vm.Fragment != "" {
		fmt.Fprintf(w, "Fragment: %s\n", vm.Fragment)
	}
	return nil
}
