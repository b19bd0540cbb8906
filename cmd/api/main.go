// ABOUTME: Main entry point for the Visual Summarizer API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visual-summarizer-api/api"
	"visual-summarizer-api/api/handlers"
	"visual-summarizer-api/api/middleware"
	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/extract"
	"visual-summarizer-api/core/interfaces"
	"visual-summarizer-api/core/panel"
	"visual-summarizer-api/core/savedpoints"
	"visual-summarizer-api/infrastructure/cache/memory"
	"visual-summarizer-api/infrastructure/cache/redis"
	"visual-summarizer-api/infrastructure/cache/sqlite"
	collyfetch "visual-summarizer-api/infrastructure/fetch/colly"
	stdhttp "visual-summarizer-api/infrastructure/http/standard"
	"visual-summarizer-api/infrastructure/llm/anthropic"
	"visual-summarizer-api/infrastructure/logger"
	"visual-summarizer-api/infrastructure/settings"
	"visual-summarizer-api/pkg/config"
	"visual-summarizer-api/pkg/featureflags"
)

const pageFetchTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	appLogger, closeLog := logger.New(cfg.Log)
	defer closeLog()

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()

	appLogger.Info("Starting Visual Summarizer API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"log_backend": cfg.Log.Backend,
		"model":       cfg.LLM.Model,
		"flags":       flags.Snapshot(),
	})

	// Create the durable store
	store, closeStore := newStore(cfg, appLogger)
	defer closeStore()

	savedStore := savedpoints.NewStore(store)
	settingsService := settings.NewService(store, cfg.LLM.APIKey, domain.Language(cfg.Panel.DefaultLanguage))

	// Create the model client
	httpClient := stdhttp.NewClient(cfg.LLM.Timeout)
	llm := anthropic.NewClient(httpClient, settingsService, appLogger, anthropic.Config{
		URL:   cfg.LLM.BaseURL,
		Model: cfg.LLM.Model,
	})

	// Create the panel registry
	extractor := extract.NewExtractor(extract.Options{
		ReadabilityFallback: flags.IsEnabled(ctx, featureflags.ReadabilityFallback),
	})
	manager := panel.NewManager(panel.Deps{
		Summarizer:  llm,
		Explainer:   llm,
		Settings:    settingsService,
		SavedPoints: savedStore,
		Recent:      savedStore.Recent(),
		Logger:      appLogger,
	}, extractor, cfg.Panel.IdleTimeout)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:  appLogger,
		Metrics: middleware.NewMetrics("visual_summarizer"),
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateBurst = cfg.Server.RateBurst
	}
	humaAPI, router, limiter := api.NewAPIWithMiddleware(apiConfig)
	if limiter != nil {
		defer limiter.Stop()
	}

	// Create and register handlers
	fetcher := collyfetch.NewFetcher(appLogger, pageFetchTimeout)
	handlers.NewPanelHandler(manager, fetcher, flags).RegisterRoutes(humaAPI)
	handlers.NewSavedHandler(savedStore, savedStore.Recent()).RegisterRoutes(humaAPI)
	handlers.NewSettingsHandler(settingsService, settingsService).RegisterRoutes(humaAPI)

	// Create HTTP server; a generation can take as long as the model timeout
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	appLogger.Info("Server stopped", map[string]interface{}{
		"open_panels": manager.Count(),
	})
}

// newStore opens the configured backend, falling back to memory when it cannot connect
func newStore(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func() error) {
	noop := func() error { return nil }

	switch cfg.Cache.Type {
	case "redis":
		store, err := redis.NewStore(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis store, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewStore(), noop
		}
		logger.Info("Using Redis store", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return store, store.Close
	case "sqlite":
		store, err := sqlite.NewStore(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to open SQLite store, falling back to memory", map[string]interface{}{
				"error": err.Error(),
				"path":  cfg.Cache.SQLite.Path,
			})
			return memory.NewStore(), noop
		}
		logger.Info("Using SQLite store", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return store, store.Close
	default:
		logger.Info("Using memory store", nil)
		return memory.NewStore(), noop
	}
}

func init() {
	// Print banner
	fmt.Println(`
 __     ___                 _   ____                                       _
 \ \   / (_)___ _   _  __ _| | / ___| _   _ _ __ ___  _ __ ___   __ _ _ __(_)_______ _ __
  \ \ / /| / __| | | |/ _' | | \___ \| | | | '_ ' _ \| '_ ' _ \ / _' | '__| |_  / _ \ '__|
   \ V / | \__ \ |_| | (_| | |  ___) | |_| | | | | | | | | | | | (_| | |  | |/ /  __/ |
    \_/  |_|___/\__,_|\__,_|_| |____/ \__,_|_| |_| |_|_| |_| |_|\__,_|_|  |_/___\___|_|
	`)
}
