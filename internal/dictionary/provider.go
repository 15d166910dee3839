// Package dictionary finds IPA transcriptions for written words.
package dictionary

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/syllabify/internal/syllable"
	"go.uber.org/zap"
)

// Provider looks up the IPA transcription of a word.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, word string) (string, error)
}

// Chain tries providers in order and returns the first transcription found.
type Chain struct {
	providers []Provider
	logger    *zap.Logger
}

// NewChain returns a chain over providers. A nil logger discards output.
func NewChain(logger *zap.Logger, providers ...Provider) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{providers: providers, logger: logger}
}

// Name implements Provider.
func (c *Chain) Name() string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Lookup implements Provider. It returns *NotFoundError when every provider
// reports the word missing, and *LookupError when at least one failed for
// another reason.
func (c *Chain) Lookup(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", &NotFoundError{Word: word}
	}

	var failures []error
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		phonetic, err := p.Lookup(ctx, word)
		if err == nil {
			c.logger.Debug("transcription found",
				zap.String("word", word),
				zap.String("provider", p.Name()),
				zap.String("phonetic", phonetic))
			return phonetic, nil
		}

		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			c.logger.Debug("provider has no transcription",
				zap.String("word", word),
				zap.String("provider", p.Name()))
			continue
		}

		c.logger.Warn("provider lookup failed",
			zap.String("word", word),
			zap.String("provider", p.Name()),
			zap.Error(err))
		failures = append(failures, err)
	}

	if len(failures) > 0 {
		return "", &LookupError{Word: word, Provider: c.Name(), Cause: errors.Join(failures...)}
	}
	return "", &NotFoundError{Word: word}
}

// usableTranscription reports whether text carries at least one vowel nucleus.
func usableTranscription(text string) bool {
	return len(syllable.ParseVowels(text)) > 0
}
