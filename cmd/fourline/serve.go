package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fourline/fourline"
	"github.com/fourline/fourline/internal/config"
	"github.com/fourline/fourline/internal/logging"
	fileAdapter "github.com/fourline/fourline/pkg/adapters/file"
	httpAdapter "github.com/fourline/fourline/pkg/adapters/http"
	redisAdapter "github.com/fourline/fourline/pkg/adapters/redis"
	"github.com/fourline/fourline/pkg/observability"
	"github.com/fourline/fourline/pkg/persistence/middleware"
	"github.com/fourline/fourline/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP game server",
	Long:  `Starts a fourline game behind a JSON API, with snapshot streaming over SSE and Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if port, _ := cmd.Flags().GetString("port"); cmd.Flags().Changed("port") {
			cfg.Listen = ":" + port
		}

		logger := logging.New(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)

		registry := prometheus.NewRegistry()
		recorder := observability.NewRecorder(registry)

		gameOpts := []fourline.Option{
			fourline.WithLogger(logger),
			fourline.WithRecorder(recorder),
		}
		var snapshots ports.SnapshotStore
		switch {
		case cfg.Redis.Addr != "":
			client := backend.NewClient(&backend.Options{Addr: cfg.Redis.Addr})
			storeOpts := []redisAdapter.Option{}
			if cfg.Redis.Prefix != "" {
				storeOpts = append(storeOpts, redisAdapter.WithPrefix(cfg.Redis.Prefix))
			}
			if cfg.Redis.TTL > 0 {
				storeOpts = append(storeOpts, redisAdapter.WithTTL(time.Duration(cfg.Redis.TTL)))
			}
			snapshots = redisAdapter.NewFromClient(client, storeOpts...)
			logger.Info("snapshot persistence enabled", "backend", "redis", "addr", cfg.Redis.Addr)
		case cfg.DataDir != "":
			snapshots = fileAdapter.NewStore(cfg.DataDir)
			logger.Info("snapshot persistence enabled", "backend", "file", "dir", cfg.DataDir)
		}
		if snapshots != nil {
			snapshots = middleware.Chain(snapshots, middleware.NewLoggingMiddleware(logger))
			gameOpts = append(gameOpts, fourline.WithSnapshots(snapshots))
		}

		game := fourline.New(gameOpts...)
		handler := httpAdapter.NewHandler(game,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting fourline server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			logger.Error("server error", "err", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("fourline server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
