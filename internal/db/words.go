package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const wordColumns = `id, word, phonetic, syllables, source, created_at, updated_at`

// UpsertWord inserts a word or, when the same spelling (case-insensitive)
// already exists, replaces its transcription and syllables.
func (db *DB) UpsertWord(ctx context.Context, input *WordInput) (*Word, error) {
	var w Word
	err := db.pool.QueryRow(ctx,
		`INSERT INTO words (word, phonetic, syllables, source)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (LOWER(word)) DO UPDATE
		 SET word = EXCLUDED.word, phonetic = EXCLUDED.phonetic,
		     syllables = EXCLUDED.syllables, source = EXCLUDED.source, updated_at = NOW()
		 RETURNING `+wordColumns,
		input.Word, input.Phonetic, input.Syllables, input.Source,
	).Scan(&w.ID, &w.Word, &w.Phonetic, &w.Syllables, &w.Source, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert word %q: %w", input.Word, err)
	}
	return &w, nil
}

// GetWord retrieves a word by ID. Returns nil, nil when it does not exist.
func (db *DB) GetWord(ctx context.Context, id uuid.UUID) (*Word, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+wordColumns+` FROM words WHERE id = $1`, id)
	w, err := scanWord(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	return w, nil
}

// GetWordByText retrieves a word by its spelling, ignoring case.
// Returns nil, nil when it does not exist.
func (db *DB) GetWordByText(ctx context.Context, word string) (*Word, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+wordColumns+` FROM words WHERE LOWER(word) = LOWER($1)`,
		strings.TrimSpace(word),
	)
	w, err := scanWord(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get word %q: %w", word, err)
	}
	return w, nil
}

// ListWords retrieves words in alphabetical order.
func (db *DB) ListWords(ctx context.Context, filters WordFilters) ([]Word, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	defer rows.Close()

	words := []Word{}
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Word, &w.Phonetic, &w.Syllables, &w.Source, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	return words, nil
}

// DeleteWord deletes a word. Returns ErrNotFound when no row matched.
func (db *DB) DeleteWord(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, ErrNotFound)
	}
	return nil
}

// ErrNotFound is returned by mutations that match no row.
var ErrNotFound = errors.New("not found")

func buildListQuery(filters WordFilters) (string, []any) {
	filters = filters.normalize()

	query := `SELECT ` + wordColumns + ` FROM words WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Prefix != "" {
		query += fmt.Sprintf(" AND LOWER(word) LIKE $%d", argNum)
		args = append(args, escapeLike(strings.ToLower(filters.Prefix))+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY LOWER(word) ASC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	return query, args
}

// escapeLike escapes LIKE wildcards in a user supplied prefix.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanWord(row pgx.Row) (*Word, error) {
	var w Word
	err := row.Scan(&w.ID, &w.Word, &w.Phonetic, &w.Syllables, &w.Source, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}
