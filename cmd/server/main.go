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

	"github.com/laptopfinder/backend/config"
	httpDelivery "github.com/laptopfinder/backend/internal/delivery/http"
	"github.com/laptopfinder/backend/internal/infrastructure/catalog"
	"github.com/laptopfinder/backend/internal/infrastructure/session"
	"github.com/laptopfinder/backend/internal/logging"
	"github.com/laptopfinder/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("catalog_source", cfg.Catalog.Source).
		Str("session_store", cfg.Session.Store).
		Msg("starting LaptopFinder backend v1.0.0")

	ctx := context.Background()

	// Initialize infrastructure dependencies
	store, err := catalog.Open(ctx, catalog.Options{
		Source:            cfg.Catalog.Source,
		Path:              cfg.Catalog.Path,
		URL:               cfg.Catalog.URL,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load catalog")
	}

	sessions, err := session.Open(ctx, cfg.Session.Store, cfg.Session.RedisURL, cfg.Session.TTL)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to open session store")
	}
	defer sessions.Close()

	// Enable debug logging in development environment
	debug := cfg.Server.Environment == "development"

	// Initialize usecase layer
	extractor := usecase.NewPreferenceExtractor(debug)
	engine := usecase.NewRecommendationEngine(store, usecase.EngineConfig{
		RelaxBudgetFactor:  cfg.Recommend.RelaxBudgetFactor,
		DefaultLimit:       cfg.Recommend.DefaultLimit,
		EnableDebugLogging: debug,
	})
	chatService := usecase.NewChatService(sessions, extractor, engine, usecase.ChatServiceConfig{
		RecommendationLimit: cfg.Recommend.ChatLimit,
	})

	logging.Info().
		Int("default_limit", cfg.Recommend.DefaultLimit).
		Int("chat_limit", cfg.Recommend.ChatLimit).
		Float64("relax_budget_factor", cfg.Recommend.RelaxBudgetFactor).
		Bool("debug", debug).
		Msg("recommendation engine ready")

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(chatService, engine, extractor, store)

	limiter := httpDelivery.NewRateLimiter(cfg.RateLimit.PerIP)
	defer limiter.Stop()

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, limiter)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("server forced to shutdown")
	}
}
