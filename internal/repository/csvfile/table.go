package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"github.com/gocarina/gocsv"
)

const (
	sourceColumn = "source_text"
	targetColumn = "target_text"
)

// Table is a word list stored as a CSV file with a source_text,target_text header.
// It serves both as the master source and as the persisted deck.
type Table struct {
	path string
}

// NewTable creates a table backed by the file at path
func NewTable(path string) *Table {
	return &Table{path: path}
}

// Path returns the backing file path
func (t *Table) Path() string {
	return t.path
}

// LoadMaster implements repository.MasterSource
func (t *Table) LoadMaster() ([]domain.WordPair, error) {
	return t.read()
}

// LoadDeck implements repository.DeckRepository
func (t *Table) LoadDeck() ([]domain.WordPair, error) {
	return t.read()
}

// SaveDeck replaces the file contents with words
func (t *Table) SaveDeck(words []domain.WordPair) error {
	return t.write(words)
}

func (t *Table) read() ([]domain.WordPair, error) {
	data, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", t.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.WordPair{}, nil
	}

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, fmt.Errorf("failed to parse header of %s: %w", t.path, err)
	}
	if err := checkHeader(header); err != nil {
		return nil, fmt.Errorf("%s: %w", t.path, err)
	}

	words := []domain.WordPair{}
	if err := gocsv.UnmarshalBytes(data, &words); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", t.path, err)
	}

	for i, w := range words {
		if w.IsZero() {
			// header row is line 1
			return nil, fmt.Errorf("%s: line %d has no source_text or target_text", t.path, i+2)
		}
	}

	return words, nil
}

// checkHeader requires both word columns, in any order
func checkHeader(header []string) error {
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		seen[strings.TrimSpace(name)] = true
	}
	for _, want := range []string{sourceColumn, targetColumn} {
		if !seen[want] {
			return fmt.Errorf("header %q has no %s column", strings.Join(header, ","), want)
		}
	}
	return nil
}

// write goes through a temp file in the same directory and renames it into
// place, so a failed write leaves the previous snapshot intact.
func (t *Table) write(words []domain.WordPair) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if words == nil {
		words = []domain.WordPair{}
	}
	if err := gocsv.Marshal(words, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, t.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", t.path, err)
	}

	return nil
}
