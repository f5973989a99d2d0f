package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashcards/internal/app"
	"flashcards/internal/config"
	"flashcards/internal/domain"
	"flashcards/internal/handler"
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Flashcards Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if err := cfg.RequireBot(); err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully", zap.String("storage", cfg.Storage))

	// Load deck
	deck, err := app.OpenDeck(cfg, logger)
	if errors.Is(err, domain.ErrMissingMasterSource) {
		logger.Fatal("No deck to practise: master word list is missing",
			zap.String("master_path", cfg.MasterPath),
		)
	}
	if err != nil {
		logger.Fatal("Failed to open deck", zap.Error(err))
	}
	defer deck.Close()

	logger.Info("Deck loaded", zap.Int("words", deck.Store.Len()))

	authService := service.NewAuthService(cfg.BotPassword)
	if !authService.Enabled() {
		logger.Warn("BOT_PASSWORD is empty, anyone can use the bot")
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(
		bot,
		authService,
		deck.Store,
		app.SessionConfig(cfg),
		domain.Labels{Source: cfg.SourceLabel, Target: cfg.TargetLabel},
		logger,
	)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	h.Stop()

	logger.Info("Bot stopped gracefully")
}
