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

	"github.com/lysyi3m/arxiv-comb/app/api"
	"github.com/lysyi3m/arxiv-comb/app/arxiv"
	"github.com/lysyi3m/arxiv-comb/app/cfg"
	"github.com/lysyi3m/arxiv-comb/app/database"
	"github.com/lysyi3m/arxiv-comb/app/mail"
	"github.com/lysyi3m/arxiv-comb/app/profile"
	"github.com/lysyi3m/arxiv-comb/app/tags"
	"github.com/lysyi3m/arxiv-comb/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
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
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting arXiv Comb server", "version", appCfg.Version)

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
	slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", version, "dirty", dirty)

	profileCache := profile.NewCache(appCfg.ProfilesDir)
	if err := profileCache.Run(); err != nil {
		slog.Error("Failed to load profiles", "dir", appCfg.ProfilesDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded profiles", "count", profileCache.GetProfileCount(), "categories", profileCache.Categories())

	listingRepo := database.NewListingRepository(db)
	subRepo := database.NewSubmissionRepository(db)
	digestRepo := database.NewDigestRepository(db)

	httpClient := &http.Client{Timeout: 60 * time.Second}

	var source arxiv.Source
	switch appCfg.Source {
	case string(arxiv.SourceAPI):
		source = arxiv.NewAPISource(httpClient, appCfg.MaxResults, appCfg.UserAgent)
	default:
		source = arxiv.NewListingSource(httpClient, arxiv.ListingMode(appCfg.ListingMode), appCfg.SameDateCheck, appCfg.UserAgent)
	}

	pipeline := tags.NewPipeline(tags.NewRakeExtractor(),
		arxiv.TagCut{Threshold: appCfg.TagScoreThreshold, Cap: appCfg.TagCap},
		appCfg.TagDedupeThreshold)

	builder := tasks.NewDigestBuilder(listingRepo, subRepo)
	sender := mail.NewSender()

	scheduler := tasks.NewScheduler(profileCache, source, pipeline, listingRepo, subRepo, digestRepo, builder, sender)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started", "workers", appCfg.WorkerCount, "interval", appCfg.SchedulerInterval)

	apiHandler := api.NewHandler(profileCache, listingRepo, digestRepo, builder, sender, scheduler)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

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

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
