// Package cmd wires the CLI: analyze for interactive triage, serve for the
// REST API, version for build info.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "webrisk",
	Short: "Domain risk intelligence and triage",
	Long: `webrisk assesses how likely a domain is part of disposable, phishing or
impersonation infrastructure. It combines DNS, WHOIS, SSL and lexical
signals into a deterministic, explainable risk score.

Example:
  webrisk analyze example.com
  webrisk analyze secure-login.tk --json
  webrisk analyze --input domains.txt
  webrisk serve --config settings.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setupLogging configures the default slog logger. The CLI logs human text
// to stderr; serve switches to the configured format.
func setupLogging(cfg domain.LoggingConfig, verbose bool) {
	level := parseLevel(cfg.Level)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
