package db

import (
	"time"

	"github.com/google/uuid"
)

// List limits for ListWords.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Word is a word bank row.
type Word struct {
	ID        uuid.UUID `json:"id"`
	Word      string    `json:"word"`
	Phonetic  string    `json:"phonetic"`
	Syllables string    `json:"syllables"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WordInput holds the fields written by UpsertWord.
type WordInput struct {
	Word      string
	Phonetic  string
	Syllables string
	Source    string
}

// WordFilters holds optional filters for listing words
type WordFilters struct {
	Prefix string
	Limit  int
	Offset int
}

// normalize applies the default limit and clamps the page window.
func (f WordFilters) normalize() WordFilters {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
