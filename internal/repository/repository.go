package repository

import (
	"errors"

	"flashcards/internal/domain"
)

// ErrNotFound is returned when the requested word source does not exist yet
var ErrNotFound = errors.New("word source not found")

// MasterSource provides the read-only full word list
type MasterSource interface {
	LoadMaster() ([]domain.WordPair, error)
}

// DeckRepository defines persisted deck operations.
// SaveDeck always overwrites the whole snapshot.
type DeckRepository interface {
	LoadDeck() ([]domain.WordPair, error)
	SaveDeck(words []domain.WordPair) error
}
