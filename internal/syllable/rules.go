// Package syllable splits written English words into syllables, using an IPA
// transcription of the word to decide where the boundaries fall.
//
// The pipeline is stateless: the transcription is scanned for vowel nuclei,
// the spelling is scanned for vowel-letter groups, the two sequences are
// aligned, and the consonants between each pair of groups are assigned to
// one side of a cut. Every exported function is safe for concurrent use.
package syllable

import (
	"slices"
	"strings"
)

// Transcription symbols recognised by the scanner.
const (
	PrimaryStress   = 'ˈ'
	SecondaryStress = 'ˌ'
	LengthMark      = 'ː'
)

// Separator is inserted between syllables in a segmented word.
const Separator = "·"

const (
	// ipaVowels starts a vowel nucleus.
	ipaVowels = "aeiouəʌæɒɔʊɪɛɜɑ"
	// ipaGlides may follow a nucleus vowel to form a diphthong.
	ipaGlides = "aeiouəɪʊ"
)

// defaultShortVowels lists the phonemes that pull a following consonant into
// a closed syllable when stressed. The low-back entries cover American
// transcriptions of the "short o" (hot, pot, repository).
var defaultShortVowels = []string{
	"æ", "e", "ɪ", "ɒ", "ʌ", "ʊ", "ɛ",
	"ɑ", "ɑː", "ɑ:", "a", "aː",
}

// defaultDigraphs lists the consonant clusters that are never split.
var defaultDigraphs = []string{
	"th", "sh", "ch", "ph", "wh", "ck", "qu", "ng",
	"tr", "dr", "cr", "br", "fr", "gr", "pr",
	"st", "sp", "sk", "sl", "sm", "sn", "sw",
	"cl", "bl", "fl", "gl", "pl",
}

// DefaultShortVowels returns a copy of the built-in short-vowel list, for
// building variant rule sets with NewRules.
func DefaultShortVowels() []string {
	return slices.Clone(defaultShortVowels)
}

// DefaultDigraphs returns a copy of the built-in digraph list.
func DefaultDigraphs() []string {
	return slices.Clone(defaultDigraphs)
}

// Rules is an immutable set of linguistic tables used by the scanner and the
// cut resolver. The zero value treats no vowel as short and no cluster as a
// digraph.
type Rules struct {
	shortVowels map[string]struct{}
	digraphs    map[string]struct{}
}

var defaultRules = NewRules(defaultShortVowels, defaultDigraphs)

// NewRules builds a rule set. Digraphs are matched case-insensitively; short
// vowels are matched exactly.
func NewRules(shortVowels, digraphs []string) Rules {
	r := Rules{
		shortVowels: make(map[string]struct{}, len(shortVowels)),
		digraphs:    make(map[string]struct{}, len(digraphs)),
	}
	for _, v := range shortVowels {
		r.shortVowels[v] = struct{}{}
	}
	for _, d := range digraphs {
		r.digraphs[strings.ToLower(d)] = struct{}{}
	}
	return r
}

// DefaultRules returns the built-in English rule set.
func DefaultRules() Rules {
	return defaultRules
}

// IsShort reports whether phoneme is in the short-vowel set.
func (r Rules) IsShort(phoneme string) bool {
	_, ok := r.shortVowels[phoneme]
	return ok
}

// IsDigraph reports whether cluster is a protected consonant cluster.
func (r Rules) IsDigraph(cluster string) bool {
	_, ok := r.digraphs[strings.ToLower(cluster)]
	return ok
}

// ShortVowels returns a copy of the short-vowel set.
func (r Rules) ShortVowels() []string {
	return keys(r.shortVowels)
}

// Digraphs returns a copy of the digraph set.
func (r Rules) Digraphs() []string {
	return keys(r.digraphs)
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func isIPAVowel(c rune) bool {
	return strings.ContainsRune(ipaVowels, c)
}

func isIPAGlide(c rune) bool {
	return strings.ContainsRune(ipaGlides, c)
}
