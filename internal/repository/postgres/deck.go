package postgres

import (
	"database/sql"
	"fmt"

	"flashcards/internal/domain"
	"flashcards/internal/repository"
)

// DeckRepo implements repository.DeckRepository on top of PostgreSQL.
// The persisted_deck marker row tells "never saved" apart from "saved empty".
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a new deck repository
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// LoadDeck returns the persisted deck in saved order
func (r *DeckRepo) LoadDeck() ([]domain.WordPair, error) {
	var id int
	err := r.db.QueryRow(`SELECT id FROM persisted_deck WHERE id = 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	query := `
		SELECT source_text, target_text
		FROM persisted_words
		ORDER BY position
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []domain.WordPair{}
	for rows.Next() {
		var w domain.WordPair
		if err := rows.Scan(&w.Source, &w.Target); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// SaveDeck replaces the persisted deck in a single transaction
func (r *DeckRepo) SaveDeck(words []domain.WordPair) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := saveDeckTx(tx, words); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deck: %w", err)
	}
	return nil
}

func saveDeckTx(tx *sql.Tx, words []domain.WordPair) error {
	marker := `
		INSERT INTO persisted_deck (id, saved_at)
		VALUES (1, NOW())
		ON CONFLICT (id)
		DO UPDATE SET saved_at = NOW()
	`
	if _, err := tx.Exec(marker); err != nil {
		return fmt.Errorf("failed to update deck marker: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM persisted_words`); err != nil {
		return fmt.Errorf("failed to clear deck: %w", err)
	}

	if len(words) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`
		INSERT INTO persisted_words (position, source_text, target_text)
		VALUES ($1, $2, $3)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range words {
		if _, err := stmt.Exec(i, w.Source, w.Target); err != nil {
			return fmt.Errorf("failed to insert word %d: %w", i, err)
		}
	}

	return nil
}
