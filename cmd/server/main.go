package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/adapter/councils"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/adapter/deprivation"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/adapter/environment"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/adapter/gemini"
	httpadapter "github.com/Yousif-Dev/hAIckathon-2025/internal/adapter/http"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/adapter/landregistry"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/adapter/police"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/config"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/impact"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/observability"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/resolver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	dataset, err := environment.Load()
	if err != nil {
		logger.Error("failed to load environment dataset", "error", err)
		os.Exit(1)
	}

	sources := impact.Sources{
		Crime:       police.NewClient(cfg.CrimeBaseURL, cfg.CrimeTimeout, logger),
		Deprivation: deprivation.NewClient(cfg.DeprivationBaseURL, cfg.DeprivationTimeout, logger),
		HousePrice:  landregistry.NewClient(cfg.HousePriceBaseURL, cfg.HousePriceTimeout, logger),
		Environment: dataset,
		Council:     councils.NewClient(cfg.CouncilBaseURL, cfg.CouncilTimeout, logger),
	}

	// Gemini is feature-flagged via GEMINI_ENABLED / GEMINI_API_KEY; with it
	// off, narratives are templated and submitted reports get the default
	// assessment.
	var generator domain.NarrativeGenerator
	var classifier domain.Classifier
	if cfg.GeminiEnabled {
		client := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, logger)
		generator = client
		classifier = client
		logger.Info("gemini enabled", "model", cfg.GeminiModel, "timeout", cfg.GeminiTimeout)
	} else {
		logger.Info("gemini disabled, using templated narratives")
	}

	res := resolver.New(cfg.CacheTTL, cfg.CacheMaxEntries, clockwork.NewRealClock(), logger, metrics)
	svc := impact.NewService(sources, res, generator, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, classifier, cfg.ClassifyTimeout, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
