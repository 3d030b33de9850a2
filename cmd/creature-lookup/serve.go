package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/web"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search page over HTTP",
	Long:  `Start an HTTP server with the search page at / and a health check at /health.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (default from CREATURE_LISTEN_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr := cfg.ListenAddr
	if listenAddr != "" {
		addr = listenAddr
	}

	client, cleanup, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := web.NewServer(&web.Config{Client: client})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", addr, "base_url", cfg.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown failed, forcing close", "error", err)
			_ = srv.Close() // nolint:errcheck // already shutting down
		}
		slog.Info("Server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
