package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/analyzer"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/api"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/cache"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/collector"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/config"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/rules"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	Long: `Start the HTTP API. Configuration errors are fatal at startup: the
server never comes up with a partially valid rule table.

Endpoints:
  POST /analyze       Analyze a domain
  GET  /config/rules  Active weights, thresholds and lists
  GET  /health        Health check
  GET  /ready         Readiness check`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to settings file (YAML)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}

	setupLogging(cfg.Logging, false)

	slog.Info("starting webrisk",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	annotator, err := rules.NewAnnotator(cfg.CustomRules)
	if err != nil {
		return err
	}
	slog.Info("custom rules compiled", "count", annotator.RuleCount())

	resultCache, err := cache.New(cfg.Cache)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer resultCache.Close()
	slog.Info("cache initialized", "type", cfg.Cache.Type)

	svc := analyzer.NewService(cfg, collector.NewService(cfg), annotator, resultCache)
	srv := api.NewServer(cfg, svc, resultCache, Version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("webrisk is ready",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("webrisk shutdown complete")
	return nil
}
