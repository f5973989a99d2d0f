package config

import (
	"fmt"
	"os"
	"time"

	"flashcards/internal/domain"

	"github.com/joho/godotenv"
)

// Storage backends for the persisted deck
const (
	StorageCSV      = "csv"
	StoragePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	MasterPath  string
	DeckPath    string
	Storage     string
	RevealDelay time.Duration
	OnExhausted domain.ExhaustionPolicy
	SourceLabel string
	TargetLabel string
	LogPath     string
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	delay, err := time.ParseDuration(getEnv("REVEAL_DELAY", "3s"))
	if err != nil {
		return nil, fmt.Errorf("REVEAL_DELAY is not a duration: %w", err)
	}
	if delay < 0 {
		return nil, fmt.Errorf("REVEAL_DELAY must not be negative")
	}

	cfg := &Config{
		MasterPath:  getEnv("MASTER_PATH", "./data/french_words.csv"),
		DeckPath:    getEnv("DECK_PATH", "./data/words_to_learn.csv"),
		Storage:     getEnv("STORAGE", StorageCSV),
		RevealDelay: delay,
		OnExhausted: domain.ExhaustionPolicy(getEnv("ON_EXHAUSTED", string(domain.ExhaustComplete))),
		SourceLabel: getEnv("SOURCE_LABEL", "French"),
		TargetLabel: getEnv("TARGET_LABEL", "English"),
		LogPath:     getEnv("LOG_PATH", "./data/flashcards.log"),
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "flashcards"),
			User:     getEnv("DB_USER", "flashcards"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate
	if !cfg.OnExhausted.Valid() {
		return nil, fmt.Errorf("ON_EXHAUSTED must be %q or %q, got %q",
			domain.ExhaustComplete, domain.ExhaustReset, cfg.OnExhausted)
	}
	switch cfg.Storage {
	case StorageCSV:
	case StoragePostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for postgres storage")
		}
	default:
		return nil, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageCSV, StoragePostgres, cfg.Storage)
	}

	return cfg, nil
}

// RequireBot checks the settings only the Telegram bot needs
func (c *Config) RequireBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
