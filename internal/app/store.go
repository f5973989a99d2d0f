// Package app wires configuration, storage and the deck store for the binaries.
package app

import (
	"database/sql"
	"fmt"
	"time"

	"flashcards/internal/config"
	"flashcards/internal/repository"
	"flashcards/internal/repository/csvfile"
	"flashcards/internal/repository/postgres"
	"flashcards/internal/service"
	"flashcards/internal/session"

	"go.uber.org/zap"
)

// MigrationsURL is where the postgres schema lives, relative to the working directory
const MigrationsURL = "file://migrations"

// Deck bundles the loaded deck store with whatever must be closed on exit
type Deck struct {
	Store *service.DeckStore
	db    *sql.DB
}

// Close releases the database connection, if any
func (d *Deck) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// OpenDeck builds the repositories selected by cfg and loads the deck
func OpenDeck(cfg *config.Config, logger *zap.Logger) (*Deck, error) {
	master := csvfile.NewTable(cfg.MasterPath)

	var (
		deckRepo repository.DeckRepository
		db       *sql.DB
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		var err error
		db, err = postgres.Connect(cfg.DSN(), 30, 2*time.Second, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established")

		if err := postgres.Migrate(db, MigrationsURL, logger); err != nil {
			db.Close()
			return nil, err
		}
		deckRepo = postgres.NewDeckRepo(db)
	default:
		deckRepo = csvfile.NewTable(cfg.DeckPath)
	}

	store := service.NewDeckStore(deckRepo, master, nil, logger)
	if err := store.Load(); err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}

	return &Deck{Store: store, db: db}, nil
}

// SessionConfig extracts the session settings from cfg
func SessionConfig(cfg *config.Config) session.Config {
	return session.Config{
		RevealDelay: cfg.RevealDelay,
		OnExhausted: cfg.OnExhausted,
	}
}
