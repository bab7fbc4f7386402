package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/danielhkuo/proposal-browser/cli"
	"github.com/danielhkuo/proposal-browser/cliparse"
)

func main() {
	// Environment from .env, if present
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
