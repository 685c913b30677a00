package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/superdesk/deskconf/config"
	deskhttp "github.com/superdesk/deskconf/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resolved configuration over HTTP",
	Long: `Resolve the configuration document once and serve it read-only.

Routes:
  GET /config.json     merged document
  GET /config/{key}    a single top-level key
  GET /schema          recognized keys
  GET /healthz         liveness check`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 5790, "HTTP server port (env: DESKCONF_SERVER_PORT)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	resolved, cfg, err := resolveDocument(cmd)
	if err != nil {
		return err
	}

	handler := deskhttp.NewHandler(&deskhttp.HandlerConfig{
		CORS:   corsConfig(cfg.CORS),
		Logger: slog.Default(),
	}, resolved)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server", "addr", addr, "source", resolved.Source().String())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

func corsConfig(c config.CORSConfig) deskhttp.CORSConfig {
	return deskhttp.CORSConfig{
		Enabled:          c.Enabled,
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   c.AllowedMethods,
		AllowedHeaders:   c.AllowedHeaders,
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAge,
	}
}
