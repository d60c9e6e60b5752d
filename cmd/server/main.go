// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinesence/internal/api"
	"github.com/tomtom215/cinesence/internal/catalog"
	"github.com/tomtom215/cinesence/internal/config"
	"github.com/tomtom215/cinesence/internal/logging"
	"github.com/tomtom215/cinesence/internal/supervisor"
	"github.com/tomtom215/cinesence/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Caller:     cfg.Logging.Caller,
		Timestamp:  true,
		Output:     os.Stderr,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer func() {
		if err := logging.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing log file")
		}
	}()

	logging.Info().
		Str("version", version).
		Str("catalog_source", cfg.Catalog.Source).
		Str("catalog_path", cfg.Catalog.Path).
		Int("top_k", cfg.Recommend.TopK).
		Msg("Starting CineSence")

	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		event := logging.Error().Err(err)
		if catalog.IsMalformed(err) {
			event = event.Bool("malformed", true)
		}
		event.Msg("Failed to load movie catalog")
		return 1
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}

	handler := api.NewHandler(nil, version)
	handler.SetResultCacheSize(cfg.Recommend.CacheSize)
	initRecommend(cat, cfg, logging.Logger(), tree, handler)

	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	httpService := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http"))
	if err := httpService.Listen(); err != nil {
		logging.Error().Err(err).Msg("Failed to bind HTTP server")
		return 1
	}
	tree.AddAPIService(httpService)
	logging.Info().Str("addr", httpService.Addr()).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// ServeBackground delivers exactly one value and never closes the channel.
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	stop()

	exitCode := 0
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
		exitCode = 1
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("CineSence stopped")
	return exitCode
}
