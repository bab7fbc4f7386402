// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/proposal-browser/catalog"
	"github.com/danielhkuo/proposal-browser/cliparse"
	"github.com/danielhkuo/proposal-browser/db"
	"github.com/danielhkuo/proposal-browser/handlers"
	"github.com/danielhkuo/proposal-browser/metrics"
	"github.com/danielhkuo/proposal-browser/router"
)

// NewServeCommand creates the serve command.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	var flags *cliparse.Flags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the proposal list over HTTP",
		Long: `Fetches the proposal feed once and serves the filterable list.

A failed fetch is not retried; the page then shows
"Proposal data failed to load." in place of the count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve()
			if err != nil {
				return err
			}
			if err := cfg.ValidateServe(); err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}

	flags = cliparse.AddFlags(cmd.Flags())
	return cmd
}

func runServer(ctx context.Context, cfg cliparse.Config) error {
	m := metrics.New()
	src := loadSource(ctx, cfg, m)

	// Connect to the saved-view database
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		return err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	mux, err := router.NewRouter(conn, cfg, src, m)
	if err != nil {
		return err
	}

	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		return err
	}
	slog.Info("Server closed")
	return nil
}

// loadSource fetches the feed once. Failure is recorded, not fatal.
func loadSource(ctx context.Context, cfg cliparse.Config, m *metrics.Metrics) handlers.Source {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	cat, err := catalog.Load(ctx, http.DefaultClient, cfg.ProposalsURL)
	if err != nil {
		slog.Error("proposal feed unavailable", "source", cfg.ProposalsURL, "error", err)
		if m != nil {
			m.LoadFailed()
		}
		return handlers.Source{Err: err}
	}

	if m != nil {
		m.SetCatalogSize(cat.Len())
	}
	return handlers.Source{Catalog: cat}
}
