package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"go.uber.org/zap"
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// DeckStore owns the in-memory deck and keeps the persisted deck in sync with it
type DeckStore struct {
	deckRepo repository.DeckRepository
	master   repository.MasterSource
	picker   Picker
	logger   *zap.Logger

	mu     sync.Mutex
	words  []domain.WordPair
	loaded bool
}

// NewDeckStore creates a new deck store. A nil picker uses a time-seeded source.
func NewDeckStore(
	deckRepo repository.DeckRepository,
	master repository.MasterSource,
	picker Picker,
	logger *zap.Logger,
) *DeckStore {
	if picker == nil {
		picker = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DeckStore{
		deckRepo: deckRepo,
		master:   master,
		picker:   picker,
		logger:   logger,
	}
}

// Load populates the deck from the persisted deck, falling back to the
// master word list on first run. The persisted deck is not written here.
func (s *DeckStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, err := s.deckRepo.LoadDeck()
	if err == nil {
		s.setWords(words)
		s.logger.Info("Loaded persisted deck", zap.Int("words", len(words)))
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to load persisted deck: %w", err)
	}

	s.logger.Info("No persisted deck yet, seeding from master word list")

	words, err = s.loadMaster()
	if err != nil {
		return err
	}

	s.setWords(words)
	s.logger.Info("Loaded master word list", zap.Int("words", len(words)))
	return nil
}

// PickRandom returns a uniformly random pair from the deck
func (s *DeckStore) PickRandom() (domain.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.words) == 0 {
		return domain.WordPair{}, domain.ErrDeckExhausted
	}
	return s.words[s.picker.Intn(len(s.words))], nil
}

// MarkKnown removes the first pair equal to pair and overwrites the persisted deck.
// When the write fails twice the removal is kept in memory and a
// *domain.PersistenceError is returned.
func (s *DeckStore) MarkKnown(pair domain.WordPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, w := range s.words {
		if w == pair {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrWordNotFound
	}

	s.words = append(s.words[:idx], s.words[idx+1:]...)

	s.logger.Info("Word marked known",
		zap.String("source", pair.Source),
		zap.Int("remaining", len(s.words)),
	)

	return s.persist()
}

// Reset re-seeds the deck from the master word list and persists it
func (s *DeckStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, err := s.loadMaster()
	if err != nil {
		return err
	}
	s.setWords(words)

	s.logger.Info("Deck reset from master word list", zap.Int("words", len(words)))
	return s.persist()
}

// Words returns a copy of the current deck
func (s *DeckStore) Words() []domain.WordPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.WordPair, len(s.words))
	copy(out, s.words)
	return out
}

// Len returns the number of words left in the deck
func (s *DeckStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// Loaded reports whether Load has succeeded
func (s *DeckStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *DeckStore) loadMaster() ([]domain.WordPair, error) {
	words, err := s.master.LoadMaster()
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.ErrMissingMasterSource
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load master word list: %w", err)
	}
	return words, nil
}

func (s *DeckStore) setWords(words []domain.WordPair) {
	s.words = make([]domain.WordPair, len(words))
	copy(s.words, words)
	s.loaded = true
}

// persist writes the whole deck, retrying once. Caller holds mu.
func (s *DeckStore) persist() error {
	snapshot := make([]domain.WordPair, len(s.words))
	copy(snapshot, s.words)

	err := s.deckRepo.SaveDeck(snapshot)
	if err == nil {
		return nil
	}

	s.logger.Warn("Failed to save deck, retrying once", zap.Error(err))

	if err = s.deckRepo.SaveDeck(snapshot); err == nil {
		return nil
	}

	s.logger.Error("Failed to save deck", zap.Error(err), zap.Int("words", len(snapshot)))
	return &domain.PersistenceError{Op: "save deck", Err: err}
}
