package app

import (
	"path/filepath"
	"testing"
	"time"

	"flashcards/internal/config"
	"flashcards/internal/domain"
	"flashcards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDeck_CSV(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		MasterPath: testutil.WriteCSV(t, dir, "french_words.csv", testutil.SampleWords()),
		DeckPath:   filepath.Join(dir, "words_to_learn.csv"),
		Storage:    config.StorageCSV,
	}

	deck, err := OpenDeck(cfg, testutil.NewTestLogger())
	require.NoError(t, err)
	defer deck.Close()

	assert.Equal(t, testutil.SampleWords(), deck.Store.Words())
}

func TestOpenDeck_MissingMaster(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		MasterPath: filepath.Join(dir, "french_words.csv"),
		DeckPath:   filepath.Join(dir, "words_to_learn.csv"),
		Storage:    config.StorageCSV,
	}

	deck, err := OpenDeck(cfg, testutil.NewTestLogger())
	assert.ErrorIs(t, err, domain.ErrMissingMasterSource)
	assert.Nil(t, deck)
}

func TestSessionConfig(t *testing.T) {
	cfg := &config.Config{RevealDelay: 2 * time.Second, OnExhausted: domain.ExhaustReset}

	sc := SessionConfig(cfg)
	assert.Equal(t, 2*time.Second, sc.RevealDelay)
	assert.Equal(t, domain.ExhaustReset, sc.OnExhausted)
}
