// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/proposal-browser/filter"
	"github.com/danielhkuo/proposal-browser/fragment"
)

// NewFragmentCommand creates the fragment command with encode and decode
// subcommands. Neither needs the proposal feed.
func NewFragmentCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fragment",
		Short: "Encode or decode shareable view fragments",
	}
	cmd.AddCommand(newFragmentEncodeCommand())
	cmd.AddCommand(newFragmentDecodeCommand(opts))
	return cmd
}

func newFragmentEncodeCommand() *cobra.Command {
	var sel filter.Selection

	cmd := &cobra.Command{
		Use:   "encode [search terms...]",
		Short: "Print the fragment for a search and status selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel.Search = strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout(), fragment.Encode(fragment.FromQuery(selectionValues(sel))))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&sel.Statuses, "status", "s", nil, "status classes")
	cmd.Flags().StringSliceVar(&sel.Versions, "version", nil, "implementation versions")
	return cmd
}

func newFragmentDecodeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <fragment>",
		Short: "Print the selection a fragment encodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSelection(cmd.OutOrStdout(), opts.Format, fragment.Decode(args[0]))
		},
	}
}

// selectionValues routes flag input through the same path as query strings
// so unknown classes are dropped and versions imply Implemented.
func selectionValues(sel filter.Selection) url.Values {
	values := url.Values{
		fragment.KeyStatus:  sel.Statuses,
		fragment.KeyVersion: sel.Versions,
	}
	if filter.IsIDList(sel.Search) {
		values[fragment.KeyProposal] = []string{sel.Search}
	} else if sel.Search != "" {
		values[fragment.KeySearch] = []string{sel.Search}
	}
	return values
}

type selectionOutput struct {
	Search   string   `json:"search,omitempty" yaml:"search,omitempty"`
	Statuses []string `json:"statuses,omitempty" yaml:"statuses,omitempty"`
	Versions []string `json:"versions,omitempty" yaml:"versions,omitempty"`
}

func writeSelection(w io.Writer, format string, sel filter.Selection) error {
	out := selectionOutput{Search: sel.Search, Statuses: sel.Statuses, Versions: sel.Versions}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "search:   %s\n", out.Search)
	fmt.Fprintf(w, "status:   %s\n", strings.Join(out.Statuses, ","))
	fmt.Fprintf(w, "version:  %s\n", strings.Join(out.Versions, ","))
	return nil
}
