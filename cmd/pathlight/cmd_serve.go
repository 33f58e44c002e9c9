package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlight/config"
	"github.com/katalvlaran/pathlight/observability"
	"github.com/katalvlaran/pathlight/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route API over HTTP",
		Long: `Serve the map and the route API over HTTP until interrupted.

Endpoints:
  GET /healthz
  GET /v1/nodes
  GET /v1/paths
  GET /v1/route?from=FROM&to=TO

Telemetry is exported to stderr as JSON when TELEMETRY_METRICS_ENABLED or
TELEMETRY_TRACING_ENABLED is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.HTTP.Host = host
			}
			if cmd.Flags().Changed("port") {
				if err := config.ValidatePort(port); err != nil {
					return err
				}
				a.cfg.HTTP.Port = port
			}
			return runServe(cmd.Context(), a, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (defaults to SERVER_HOST)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (defaults to SERVER_PORT)")
	return cmd
}

// runServe serves until parent is cancelled or a signal arrives.
// Telemetry, when enabled, is exported to telemetryOut.
func runServe(parent context.Context, a *app, telemetryOut io.Writer) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, a.cfg.Telemetry, telemetryOut)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			a.logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	var opts []server.ServiceOption
	if a.cfg.Telemetry.MetricsEnabled {
		opts = append(opts, server.WithMetrics(observability.NewMetricsRecorder()))
	}
	if a.cfg.Telemetry.TracingEnabled {
		opts = append(opts, server.WithSpans(observability.NewSpanManager()))
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	svc, err := server.NewService(g, a.logger, opts...)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(a.logger, server.NewHandlers(svc))
	srv := server.New(a.logger, a.cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("signal received, shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
