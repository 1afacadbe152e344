package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seatgrid/internal/config"
	"github.com/katalvlaran/seatgrid/internal/metrics"
	"github.com/katalvlaran/seatgrid/internal/server"
)

var (
	serveConfig string
	serveDebug  bool
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the arrangement API over HTTP",
		Long: `Serve the arrangement engines as a JSON API.

Routes:
  POST /api/v1/arrange   compute an arrangement
  GET  /api/v1/halls     list configured hall presets
  GET  /healthz          liveness probe
  GET  /metrics          Prometheus metrics

Hall presets are hot-reloaded when the config file changes.`,
		RunE: runServe,
	}
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Config file; omit for defaults")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Log every request")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if serveDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := config.DefaultConfig()
	if serveConfig != "" {
		loaded, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	metrics.Register(prometheus.DefaultRegisterer)
	srv := server.New(cfg, logger, int64(runtime.GOMAXPROCS(0)))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if serveConfig != "" {
		go func() {
			if err := config.Watch(ctx, serveConfig, srv.ApplyConfig); err != nil && !errors.Is(err, context.Canceled) {
				logger.WithError(err).Warn("config watcher stopped")
			}
		}()
	}

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("listen", cfg.Listen).Info("serving")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
