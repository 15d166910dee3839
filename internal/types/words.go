package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxBatchSize is the largest number of words accepted in one batch.
const MaxBatchSize = 1000

var validate = validator.New()

// WordEntry is a written word paired with its IPA transcription.
type WordEntry struct {
	Word     string `json:"word" validate:"required,max=64,alphaunicode"`
	Phonetic string `json:"phonetic" validate:"required,max=128"`
}

// WordList is the document read by the batch and import commands.
type WordList struct {
	Words []WordEntry `json:"words" validate:"required,min=1,max=1000,dive"`
}

// SegmentResult is the outcome of segmenting one word.
type SegmentResult struct {
	Word      string   `json:"word"`
	Phonetic  string   `json:"phonetic"`
	Syllables string   `json:"syllables"`
	Parts     []string `json:"parts"`
	Segmented bool     `json:"segmented"`
}

// BatchSegmentRequest segments several words in one call.
type BatchSegmentRequest struct {
	Words []WordEntry `json:"words" validate:"required,min=1,max=1000,dive"`
}

// BatchSegmentResponse holds results in request order.
type BatchSegmentResponse struct {
	Results []SegmentResult `json:"results"`
}

// CreateWordRequest adds a word to the word bank. Syllables are computed
// server side.
type CreateWordRequest struct {
	Word     string `json:"word" validate:"required,max=64,alphaunicode"`
	Phonetic string `json:"phonetic" validate:"required,max=128"`
	Source   string `json:"source,omitempty" validate:"omitempty,max=64"`
}

// Word is a stored word bank entry as returned by the API.
type Word struct {
	ID        uuid.UUID `json:"id"`
	Word      string    `json:"word"`
	Phonetic  string    `json:"phonetic"`
	Syllables string    `json:"syllables"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenRequest exchanges the admin password for a bearer token.
type TokenRequest struct {
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued admin token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Validate validates the WordEntry using the validator.
func (e *WordEntry) Validate() error {
	return validate.Struct(e)
}

// Validate validates the WordList using the validator.
func (l *WordList) Validate() error {
	return validate.Struct(l)
}

// Validate validates the BatchSegmentRequest using the validator.
func (r *BatchSegmentRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateWordRequest using the validator.
func (r *CreateWordRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	return validate.Struct(r)
}
