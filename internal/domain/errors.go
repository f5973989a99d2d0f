package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMasterSource means neither a persisted deck nor the master word list exists
	ErrMissingMasterSource = errors.New("master word list not found")
	// ErrDeckExhausted is returned when a card is requested from an empty deck
	ErrDeckExhausted = errors.New("deck exhausted: every word is marked known")
	// ErrWordNotFound is returned when a pair to remove is not in the deck
	ErrWordNotFound = errors.New("word pair not in deck")
	// ErrPersistence marks a failed write of the persisted deck
	ErrPersistence = errors.New("failed to persist deck")
)

// PersistenceError wraps a storage failure. The in-memory deck stays
// authoritative until the next successful write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrPersistence) match any PersistenceError
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
