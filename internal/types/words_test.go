package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   WordEntry
		wantErr bool
		field   string
	}{
		{"valid", WordEntry{Word: "current", Phonetic: "/ˈkʌrənt/"}, false, ""},
		{"valid unicode letters", WordEntry{Word: "naïve", Phonetic: "/naɪˈiːv/"}, false, ""},
		{"missing word", WordEntry{Phonetic: "/ˈkʌrənt/"}, true, "Word"},
		{"missing phonetic", WordEntry{Word: "current"}, true, "Phonetic"},
		{"whitespace in word", WordEntry{Word: "ice cream", Phonetic: "/aɪs kriːm/"}, true, "Word"},
		{"hyphen in word", WordEntry{Word: "well-known", Phonetic: "/wel nəʊn/"}, true, "Word"},
		{"word too long", WordEntry{Word: strings.Repeat("a", 65), Phonetic: "/a/"}, true, "Word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestBatchSegmentRequest_Validate(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		req := BatchSegmentRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("invalid entry is reported", func(t *testing.T) {
		req := BatchSegmentRequest{Words: []WordEntry{
			{Word: "current", Phonetic: "/ˈkʌrənt/"},
			{Word: "", Phonetic: "/x/"},
		}}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Words[1].Word")
	})

	t.Run("too many words", func(t *testing.T) {
		words := make([]WordEntry, MaxBatchSize+1)
		for i := range words {
			words[i] = WordEntry{Word: "current", Phonetic: "/ˈkʌrənt/"}
		}
		req := BatchSegmentRequest{Words: words}
		assert.Error(t, req.Validate())
	})
}

func TestCreateWordRequest_Validate(t *testing.T) {
	req := CreateWordRequest{Word: "teacher", Phonetic: "/ˈtiːtʃər/", Source: "manual"}
	assert.NoError(t, req.Validate())

	req.Source = strings.Repeat("s", 65)
	assert.Error(t, req.Validate())
}

func TestTokenRequest_Validate(t *testing.T) {
	assert.Error(t, (&TokenRequest{}).Validate())
	assert.NoError(t, (&TokenRequest{Password: "secret"}).Validate())
}

func TestWordList_JSON(t *testing.T) {
	data := `{"words":[{"word":"teacher","phonetic":"/ˈtiːtʃər/"}]}`

	var list WordList
	require.NoError(t, json.Unmarshal([]byte(data), &list))
	require.Len(t, list.Words, 1)
	assert.Equal(t, "teacher", list.Words[0].Word)
	assert.NoError(t, list.Validate())
}
