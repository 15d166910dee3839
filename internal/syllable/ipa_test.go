package syllable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTranscription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"slashes", "/ˈkʌrənt/", "ˈkʌrənt"},
		{"brackets", "[ˈtiːtʃər]", "ˈtiːtʃər"},
		{"plain colon", "/ˈtiːtʃər/", "ˈtiːtʃər"},
		{"colon normalised", "ti:tʃə", "tiːtʃə"},
		{"backslash", `\rɪˈpɑːzətɔːri\`, "rɪˈpɑːzətɔːri"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTranscription(tt.input))
		})
	}
}

func TestParseVowels_Repository(t *testing.T) {
	nuclei := ParseVowels("/rɪˈpɑːzətɔːri/")

	assert.Equal(t, []VowelNucleus{
		{Phoneme: "ɪ", Stressed: false, Short: true},
		{Phoneme: "ɑː", Stressed: true, Short: true},
		{Phoneme: "ə", Stressed: false, Short: false},
		{Phoneme: "ɔː", Stressed: false, Short: false},
		{Phoneme: "i", Stressed: false, Short: false},
	}, nuclei)
}

func TestParseVowels_StressMarks(t *testing.T) {
	t.Run("primary stress applies to next nucleus only", func(t *testing.T) {
		nuclei := ParseVowels("/ˈkʌrənt/")
		assert.Len(t, nuclei, 2)
		assert.True(t, nuclei[0].Stressed)
		assert.False(t, nuclei[1].Stressed)
	})

	t.Run("secondary stress counts as stress", func(t *testing.T) {
		nuclei := ParseVowels("/ˌkɒmpəˈzɪʃən/")
		assert.Len(t, nuclei, 4)
		assert.True(t, nuclei[0].Stressed)
		assert.False(t, nuclei[1].Stressed)
		assert.True(t, nuclei[2].Stressed)
		assert.False(t, nuclei[3].Stressed)
	})

	t.Run("stress carries over consonants", func(t *testing.T) {
		nuclei := ParseVowels("ˈstrɪŋ")
		assert.Len(t, nuclei, 1)
		assert.True(t, nuclei[0].Stressed)
	})
}

func TestParseVowels_Lookahead(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		phonemes []string
	}{
		{"length mark", "tiː", []string{"iː"}},
		{"plain colon becomes length mark", "ti:", []string{"iː"}},
		{"diphthong", "/ˈwɪndoʊ/", []string{"ɪ", "oʊ"}},
		{"diphthong then length mark is skipped", "aɪːb", []string{"aɪ"}},
		{"glide only pairs once", "aɪə", []string{"aɪ", "ə"}},
		{"non glide vowel after vowel starts new nucleus", "ʌæ", []string{"ʌ", "æ"}},
		{"multi byte symbols", "ɜːɒ", []string{"ɜː", "ɒ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nuclei := ParseVowels(tt.input)
			got := make([]string, len(nuclei))
			for i, n := range nuclei {
				got[i] = n.Phoneme
			}
			assert.Equal(t, tt.phonemes, got)
		})
	}
}

func TestParseVowels_ShortClassification(t *testing.T) {
	tests := []struct {
		input string
		short bool
	}{
		{"æ", true},
		{"ɛ", true},
		{"ɑ", true},
		{"ɑː", true},
		{"a", true},
		{"aː", true},
		{"iː", false},
		{"ə", false},
		{"ɔː", false},
		{"aɪ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			nuclei := ParseVowels(tt.input)
			if assert.Len(t, nuclei, 1) {
				assert.Equal(t, tt.short, nuclei[0].Short)
			}
		})
	}
}

func TestParseVowels_NoVowels(t *testing.T) {
	assert.Empty(t, ParseVowels(""))
	assert.Empty(t, ParseVowels("/ˈ/"))
	assert.Empty(t, ParseVowels("ʃtr"))
}

func TestRules_ParseVowelsUsesInjectedShortSet(t *testing.T) {
	rules := NewRules([]string{"iː"}, nil)
	nuclei := rules.ParseVowels("tiːtæ")

	if assert.Len(t, nuclei, 2) {
		assert.True(t, nuclei[0].Short)
		assert.False(t, nuclei[1].Short)
	}
}
