package config

import (
	"testing"
	"time"

	"flashcards/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MASTER_PATH", "DECK_PATH", "STORAGE", "REVEAL_DELAY", "ON_EXHAUSTED",
		"SOURCE_LABEL", "TARGET_LABEL", "LOG_PATH", "BOT_TOKEN", "BOT_PASSWORD",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./data/french_words.csv", cfg.MasterPath)
	assert.Equal(t, "./data/words_to_learn.csv", cfg.DeckPath)
	assert.Equal(t, StorageCSV, cfg.Storage)
	assert.Equal(t, 3*time.Second, cfg.RevealDelay)
	assert.Equal(t, domain.ExhaustComplete, cfg.OnExhausted)
	assert.Equal(t, "French", cfg.SourceLabel)
	assert.Equal(t, "English", cfg.TargetLabel)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "flashcards", cfg.Database.Name)
	assert.Equal(t, "flashcards", cfg.Database.User)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MASTER_PATH", "/srv/words/de.csv")
	t.Setenv("REVEAL_DELAY", "1500ms")
	t.Setenv("ON_EXHAUSTED", "reset")
	t.Setenv("STORAGE", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SOURCE_LABEL", "Deutsch")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/words/de.csv", cfg.MasterPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.RevealDelay)
	assert.Equal(t, domain.ExhaustReset, cfg.OnExhausted)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "Deutsch", cfg.SourceLabel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{
			name:     "bad reveal delay",
			env:      map[string]string{"REVEAL_DELAY": "soon"},
			contains: "REVEAL_DELAY",
		},
		{
			name:     "negative reveal delay",
			env:      map[string]string{"REVEAL_DELAY": "-1s"},
			contains: "REVEAL_DELAY",
		},
		{
			name:     "unknown exhaustion policy",
			env:      map[string]string{"ON_EXHAUSTED": "loop"},
			contains: "ON_EXHAUSTED",
		},
		{
			name:     "unknown storage",
			env:      map[string]string{"STORAGE": "sqlite"},
			contains: "STORAGE",
		},
		{
			name:     "postgres without password",
			env:      map[string]string{"STORAGE": "postgres"},
			contains: "DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestConfig_RequireBot(t *testing.T) {
	cfg := &Config{}
	err := cfg.RequireBot()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")

	cfg.BotToken = "token"
	assert.NoError(t, cfg.RequireBot())
}
