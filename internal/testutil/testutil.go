package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPair creates a word pair
func NewTestPair(source, target string) domain.WordPair {
	return domain.WordPair{Source: source, Target: target}
}

// SampleWords returns the two-word master list used across tests
func SampleWords() []domain.WordPair {
	return []domain.WordPair{
		NewTestPair("bonjour", "hello"),
		NewTestPair("chat", "cat"),
	}
}

// WriteCSV writes a word list in the source_text,target_text format and returns its path
func WriteCSV(t *testing.T, dir, name string, words []domain.WordPair) string {
	t.Helper()

	content := "source_text,target_text\n"
	for _, w := range words {
		content += w.Source + "," + w.Target + "\n"
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
