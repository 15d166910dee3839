package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), nil, "")
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestExtractTextFromResponse(t *testing.T) {
	t.Run("joins text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"phonetic":`), genai.Text(` "/ˈkʌrənt/"}`)}},
			}},
		}
		text, err := extractTextFromResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, `{"phonetic": "/ˈkʌrənt/"}`, text)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
		assert.ErrorContains(t, err, "no candidates")
	})

	t.Run("nil response", func(t *testing.T) {
		_, err := extractTextFromResponse(nil)
		assert.Error(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
		_, err := extractTextFromResponse(resp)
		assert.ErrorContains(t, err, "no content")
	})

	t.Run("non text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
			}},
		}
		_, err := extractTextFromResponse(resp)
		assert.ErrorContains(t, err, "no text parts")
	})
}
