package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/resource-scout/app/api"
	"github.com/lysyi3m/resource-scout/app/cfg"
	"github.com/lysyi3m/resource-scout/app/database"
	"github.com/lysyi3m/resource-scout/app/feed"
	"github.com/lysyi3m/resource-scout/app/importer"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Resource Scout server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	feedsConfig, err := cfg.LoadFeeds(appCfg.FeedsFile)
	if err != nil {
		slog.Error("Failed to load feeds configuration", "file", appCfg.FeedsFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Feeds configuration loaded", "file", appCfg.FeedsFile, "feeds", len(feedsConfig.Feeds))

	// Initialize repositories
	resourceRepo := database.NewResourceRepository(db)
	sourceRepo := database.NewDataSourceRepository(db)
	searchRepo := database.NewSearchRepository(db)

	// Initialize core components
	fetcher := feed.NewFetcher(appCfg.UserAgent)
	filterer := feed.NewFilterer()
	imp := importer.New(fetcher, filterer, resourceRepo, searchRepo, feedsConfig)

	// Initialize HTTP server
	handler := api.NewHandler(imp, resourceRepo, sourceRepo, searchRepo)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Resource Scout shutdown complete")
}
