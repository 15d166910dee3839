package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/syllabify/internal/llm"
)

// LLMProvider asks a language model for a transcription.
type LLMProvider struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLMProvider creates a provider backed by client.
func NewLLMProvider(client llm.Client) *LLMProvider {
	return &LLMProvider{client: client, tier: llm.TierLite}
}

type transcriptionResponse struct {
	Phonetic string `json:"phonetic"`
}

// Name implements Provider.
func (p *LLMProvider) Name() string {
	return "llm"
}

// Lookup implements Provider.
func (p *LLMProvider) Lookup(ctx context.Context, word string) (string, error) {
	raw, err := p.client.GenerateJSON(ctx, buildTranscriptionPrompt(word), p.tier)
	if err != nil {
		return "", &LookupError{Word: word, Provider: p.Name(), Cause: err}
	}

	var resp transcriptionResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return "", &LookupError{Word: word, Provider: p.Name(), Cause: fmt.Errorf("failed to parse response: %w", err)}
	}

	phonetic := strings.TrimSpace(resp.Phonetic)
	if phonetic == "" || !usableTranscription(phonetic) {
		return "", &NotFoundError{Word: word, Provider: p.Name()}
	}
	return phonetic, nil
}

func buildTranscriptionPrompt(word string) string {
	var sb strings.Builder
	sb.WriteString("Give the standard IPA transcription of the English word below.\n")
	sb.WriteString("Mark primary stress with ˈ, secondary stress with ˌ and long vowels with ː.\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\n  \"phonetic\": string // the transcription wrapped in slashes, empty if the word is unknown\n}\n\n")
	sb.WriteString("Word: ")
	sb.WriteString(strings.TrimSpace(word))
	sb.WriteString("\n")
	return sb.String()
}
