package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"flashcards/internal/app"
	"flashcards/internal/config"
	"flashcards/internal/domain"
	"flashcards/internal/session"
	"flashcards/internal/tui"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newFileLogger(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	deck, err := app.OpenDeck(cfg, logger)
	if errors.Is(err, domain.ErrMissingMasterSource) {
		logger.Error("Master word list is missing", zap.String("master_path", cfg.MasterPath))
		return fmt.Errorf("no deck to practise: %s does not exist and no saved progress was found", cfg.MasterPath)
	}
	if err != nil {
		logger.Error("Failed to open deck", zap.Error(err))
		return err
	}
	defer deck.Close()

	presenter := tui.NewPresenter()
	sess := session.New(deck.Store, presenter, app.SessionConfig(cfg), logger)
	defer sess.Stop()

	labels := domain.Labels{Source: cfg.SourceLabel, Target: cfg.TargetLabel}
	if err := tui.Run(tui.New(sess, deck.Store, presenter, labels)); err != nil {
		logger.Error("Terminal UI failed", zap.Error(err))
		return err
	}

	logger.Info("Session ended", zap.Int("words_left", deck.Store.Len()))
	return nil
}

// newFileLogger writes JSON logs to path so they never draw over the UI
func newFileLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}
