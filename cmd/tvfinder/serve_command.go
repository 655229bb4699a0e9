package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/metrics"
	"github.com/Belphemur/tvfinder/internal/reporting"
	"github.com/Belphemur/tvfinder/internal/web"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	var address string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web front-end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if cmd.Flags().Changed("address") {
				cfg.Server.Address = address
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			return runServe(cmd.Context(), cfg, ctx.newClient)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address (overrides server.address)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides server.port)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, newClient clientFactory) error {
	logger := config.GetLogger()

	logger.Info().
		Str("tvmaze_base_url", cfg.TVMazeBaseURL).
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("cache_provider", cfg.Cache.Provider).
		Bool("breaker_enabled", cfg.Breaker.Enabled).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Msg("Application started with configuration")

	if err := reporting.Init(cfg.Sentry.DSN, cfg.Sentry.Environment, version); err != nil {
		logger.Warn().Err(err).Msg("Failed to initialise Sentry, continuing without error reporting")
	}
	defer reporting.Flush(2 * time.Second)

	tvClient := newClient(cfg)
	defer func() {
		if err := tvClient.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close TVMaze client")
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	server := web.NewHTTPServer(cfg.Server.Address, cfg.Server.Port, web.NewRouter(tvClient, cfg))

	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", server.Addr).Msg("Starting web server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}

	logger.Info().Msg("Server stopped gracefully")
	return nil
}
