package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/ryannerby/jobnest/internal/ai"
	"github.com/ryannerby/jobnest/internal/config"
	"github.com/ryannerby/jobnest/internal/job"
	"github.com/ryannerby/jobnest/internal/linkedin"
	"github.com/ryannerby/jobnest/internal/platform/sqlite"
	jobrepo "github.com/ryannerby/jobnest/internal/repository/job"
	"github.com/ryannerby/jobnest/internal/server"
)

func main() {
	cfg := config.Load()

	// Root context: cancelled on SIGINT/SIGTERM so in-flight requests wind
	// down promptly during graceful shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Open database
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	// Repositories and services
	jobRepo := jobrepo.NewRepository(db.DB)
	jobSvc := job.NewService(jobRepo)

	// Language model is optional: without an API key the heuristic extractor
	// serves extraction and generation reports itself unavailable.
	var model llms.Model
	if cfg.GeminiKey != "" {
		m, err := googleai.New(rootCtx,
			googleai.WithAPIKey(cfg.GeminiKey),
			googleai.WithDefaultModel(cfg.GeminiModel),
		)
		if err != nil {
			slog.Error("failed to create language model client", "error", err)
			os.Exit(1)
		}
		model = m
		slog.Info("language model configured", "model", cfg.GeminiModel)
	} else {
		slog.Warn("GEMINI_API_KEY not set, using heuristic extraction only")
	}

	var extractor ai.Extractor = ai.NewHeuristicExtractor()
	if model != nil {
		extractor = ai.NewLLMExtractor(model)
	}
	generator := ai.NewGenerator(model)
	search := linkedin.NewProvider()

	// rootCtx is used as BaseContext so every request context inherits from
	// it and is cancelled on shutdown.
	srv := server.New(rootCtx, cfg.Port, jobSvc, extractor, generator, search)

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("server started", "port", cfg.Port)
	<-done

	rootCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
