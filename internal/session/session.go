// Package session drives the two-phase presentation of a card: the front is
// shown first and the back is revealed after a delay or on demand. It holds
// no deck logic of its own.
package session

import (
	"errors"
	"sync"
	"time"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// ErrNoCard is returned when an action needs a card but none is shown
var ErrNoCard = errors.New("no card on display")

// Deck is the part of the deck store a session needs
type Deck interface {
	PickRandom() (domain.WordPair, error)
	MarkKnown(pair domain.WordPair) error
	Reset() error
}

// Presenter renders cards. Methods are called with the session lock held
// and must not call back into the Session.
type Presenter interface {
	ShowFront(pair domain.WordPair)
	ShowBack(pair domain.WordPair)
	ShowComplete()
	Warn(err error)
}

// Timer is a pending reveal that can be cancelled
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Config holds session behaviour settings
type Config struct {
	RevealDelay time.Duration
	OnExhausted domain.ExhaustionPolicy
}

// Option customizes a Session
type Option func(*Session)

// WithAfterFunc replaces the timer implementation
func WithAfterFunc(f AfterFunc) Option {
	return func(s *Session) {
		s.afterFunc = f
	}
}

// Session is the card state machine: none -> front -> back -> front ...
type Session struct {
	deck      Deck
	presenter Presenter
	cfg       Config
	afterFunc AfterFunc
	logger    *zap.Logger

	mu       sync.Mutex
	current  domain.WordPair
	face     domain.Face
	timer    Timer
	seq      uint64
	complete bool
}

// New creates a new session
func New(deck Deck, presenter Presenter, cfg Config, logger *zap.Logger, opts ...Option) *Session {
	if !cfg.OnExhausted.Valid() {
		cfg.OnExhausted = domain.ExhaustComplete
	}
	s := &Session{
		deck:      deck,
		presenter: presenter,
		cfg:       cfg,
		afterFunc: realAfterFunc,
		logger:    logger,
		face:      domain.FaceNone,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next shows the front of a random card and schedules its reveal.
// The current card, if any, stays in the deck.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next()
}

// MarkKnown removes the current card from the deck and moves on.
// A persistence failure is reported to the presenter and does not stop the session.
func (s *Session) MarkKnown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.face == domain.FaceNone {
		return ErrNoCard
	}

	pair := s.current
	if err := s.deck.MarkKnown(pair); err != nil {
		switch {
		case errors.Is(err, domain.ErrPersistence):
			s.logger.Warn("Known word not saved, keeping in-memory deck", zap.Error(err))
			s.presenter.Warn(err)
		case errors.Is(err, domain.ErrWordNotFound):
			s.logger.Warn("Current card already gone from deck", zap.String("source", pair.Source))
		default:
			s.presenter.Warn(err)
			return err
		}
	}

	return s.next()
}

// Reveal shows the back of the current card now
func (s *Session) Reveal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.face {
	case domain.FaceNone:
		return ErrNoCard
	case domain.FaceBack:
		return nil
	}

	s.cancelTimer()
	s.showBack()
	return nil
}

// Stop cancels any pending reveal
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTimer()
}

// Current returns the card on display
func (s *Session) Current() domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Card{Pair: s.current, Face: s.face}
}

// Complete reports whether the deck ran out under the "complete" policy
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

func (s *Session) next() error {
	s.cancelTimer()

	pair, err := s.deck.PickRandom()
	if errors.Is(err, domain.ErrDeckExhausted) {
		var done bool
		pair, done, err = s.exhausted()
		if done {
			return nil
		}
	}
	if err != nil {
		s.presenter.Warn(err)
		return err
	}

	s.current = pair
	s.face = domain.FaceFront
	s.complete = false
	s.presenter.ShowFront(pair)

	seq := s.seq
	s.timer = s.afterFunc(s.cfg.RevealDelay, func() {
		s.reveal(seq)
	})

	return nil
}

// exhausted applies the exhaustion policy. With "complete", or when the
// master list itself is empty, the session ends and the bool is true.
func (s *Session) exhausted() (domain.WordPair, bool, error) {
	if s.cfg.OnExhausted == domain.ExhaustReset {
		s.logger.Info("Deck exhausted, resetting from master word list")
		if err := s.deck.Reset(); err != nil {
			return domain.WordPair{}, false, err
		}
		pair, err := s.deck.PickRandom()
		if !errors.Is(err, domain.ErrDeckExhausted) {
			return pair, false, err
		}
	}

	s.logger.Info("Deck complete")
	s.current = domain.WordPair{}
	s.face = domain.FaceNone
	s.complete = true
	s.presenter.ShowComplete()
	return domain.WordPair{}, true, nil
}

func (s *Session) reveal(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a newer card replaced this one
	if seq != s.seq || s.face != domain.FaceFront {
		return
	}
	s.timer = nil
	s.showBack()
}

func (s *Session) showBack() {
	s.face = domain.FaceBack
	s.presenter.ShowBack(s.current)
}

func (s *Session) cancelTimer() {
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
