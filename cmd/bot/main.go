package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/config"
	"github.com/yourusername/customs-ai-bot/internal/delivery/httpapi"
	"github.com/yourusername/customs-ai-bot/internal/delivery/telegram"
	"github.com/yourusername/customs-ai-bot/internal/domain/constants"
	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
	"github.com/yourusername/customs-ai-bot/internal/infrastructure/catalog"
	"github.com/yourusername/customs-ai-bot/internal/infrastructure/gemini"
	"github.com/yourusername/customs-ai-bot/internal/infrastructure/storage"
	"github.com/yourusername/customs-ai-bot/internal/usecase"
	"github.com/yourusername/customs-ai-bot/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()
	log.Info("starting customs assistant", zap.String("port", cfg.Port))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalogRepo := storage.NewMemoryCatalogRepository()
	sessionRepo := storage.NewMemorySessionRepository()

	synonymRepo, err := buildSynonymRepo(cfg)
	if err != nil {
		log.Fatal("failed to init synonym store", zap.String("store", cfg.SynonymStore), zap.Error(err))
	}

	loader := catalog.NewLoader(cfg.CatalogPath, catalogRepo, log)
	if err := loader.Load(ctx); err != nil {
		// The server still answers /api/ping; the assistant reports the
		// catalog as unavailable until a refresh succeeds.
		log.Warn("catalog not loaded", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	go loader.RunRefresh(ctx, time.Duration(cfg.CatalogRefreshMinutes)*time.Minute)
	go storage.RunSessionCleanup(ctx, sessionRepo, cfg.SessionTTL, constants.SessionCleanupMinutes*time.Minute, log)

	var aiRepo repository.AIRepository
	if cfg.GeminiAPIKey != "" {
		aiRepo, err = gemini.NewGeminiClient(cfg.GeminiAPIKey, log)
		if err != nil {
			log.Warn("gemini client not available", zap.Error(err))
			aiRepo = nil
		}
	}

	assist := usecase.NewAssistUseCase(catalogRepo, sessionRepo, synonymRepo, aiRepo, usecase.Config{
		Duty: usecase.DutyConfig{
			ExchangeRateYER: cfg.ExchangeRateYER,
			Factors:         map[int]float64{5: cfg.CustomsFactor5, 10: cfg.CustomsFactor10},
			DefaultCategory: cfg.DefaultDutyCategory,
		},
		DirectThreshold: cfg.DirectThreshold,
		FuzzyThreshold:  cfg.FuzzyThreshold,
		CalculatorURL:   cfg.CalculatorURL,
	}, log)

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBotHandler(cfg.TelegramToken, assist, log)
		if err != nil {
			log.Warn("telegram bot not available", zap.Error(err))
		} else {
			go bot.Start(ctx)
		}
	}

	handler := httpapi.NewHandler(assist, catalogRepo, log)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpapi.NewRouter(handler, "public"),
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("stopped")
}

func buildSynonymRepo(cfg *config.Config) (repository.SynonymRepository, error) {
	switch cfg.SynonymStore {
	case "postgres":
		return storage.NewPostgresSynonymRepository(cfg.DatabaseURL)
	case "redis":
		return storage.NewRedisSynonymRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return storage.NewMemorySynonymRepository(), nil
	}
}
