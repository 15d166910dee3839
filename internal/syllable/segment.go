package syllable

import "strings"

// Boundary records one cut decision between two adjacent vowel groups.
type Boundary struct {
	Bridge  string       `json:"bridge"`
	Nucleus VowelNucleus `json:"nucleus"`
	Offset  int          `json:"offset"`
	Cut     int          `json:"cut"`
	Rule    CutRule      `json:"rule"`
}

// Analysis is the full trace of one segmentation.
type Analysis struct {
	Word       string         `json:"word"`
	Phonetic   string         `json:"phonetic"`
	Nuclei     []VowelNucleus `json:"nuclei"`
	Groups     []VowelGroup   `json:"groups"`
	Aligned    []VowelGroup   `json:"aligned"`
	Boundaries []Boundary     `json:"boundaries"`
	Syllables  []string       `json:"syllables"`
	Result     string         `json:"result"`
}

// Segmented reports whether at least one boundary was inserted.
func (a Analysis) Segmented() bool {
	return len(a.Syllables) > 1
}

// Segmenter applies a rule set to (word, transcription) pairs.
type Segmenter struct {
	rules Rules
}

// NewSegmenter returns a segmenter using rules.
func NewSegmenter(rules Rules) *Segmenter {
	return &Segmenter{rules: rules}
}

// Rules returns the segmenter's rule set.
func (s *Segmenter) Rules() Rules {
	return s.rules
}

var defaultSegmenter = NewSegmenter(defaultRules)

// Segment returns word with Separator inserted at each syllable boundary,
// or the trimmed word unchanged when it cannot be segmented.
func Segment(word, phonetic string) string {
	return defaultSegmenter.Segment(word, phonetic)
}

// Segment returns word with Separator inserted at each syllable boundary.
func (s *Segmenter) Segment(word, phonetic string) string {
	return s.Analyze(word, phonetic).Result
}

// Analyze segments word and returns every intermediate step.
//
// A word whose transcription has fewer than two nuclei, or whose spelling
// has fewer than two vowel groups after alignment, is returned unchanged.
// When nuclei outnumber groups only the available boundaries are cut and the
// rest of the word becomes the final syllable.
func (s *Segmenter) Analyze(word, phonetic string) Analysis {
	word = strings.TrimSpace(word)

	a := Analysis{
		Word:     word,
		Phonetic: phonetic,
		Nuclei:   s.rules.ParseVowels(phonetic),
		Groups:   FindVowelGroups(word),
	}

	if len(a.Nuclei) <= 1 {
		return a.unsegmented()
	}

	a.Aligned = Reconcile(a.Groups, len(a.Nuclei))
	if len(a.Aligned) <= 1 {
		return a.unsegmented()
	}

	limit := min(len(a.Aligned)-1, len(a.Nuclei))
	last := 0
	for i := 0; i < limit; i++ {
		left, right := a.Aligned[i], a.Aligned[i+1]
		bridge := word[left.End:right.Start]
		nucleus := a.Nuclei[i]

		offset, rule := s.rules.resolveCut(bridge, &nucleus)
		cut := left.End + offset

		a.Syllables = append(a.Syllables, word[last:cut])
		a.Boundaries = append(a.Boundaries, Boundary{
			Bridge:  bridge,
			Nucleus: nucleus,
			Offset:  offset,
			Cut:     cut,
			Rule:    rule,
		})
		last = cut
	}
	a.Syllables = append(a.Syllables, word[last:])
	a.Result = strings.Join(a.Syllables, Separator)

	return a
}

func (a Analysis) unsegmented() Analysis {
	a.Syllables = []string{a.Word}
	a.Result = a.Word
	return a
}

// Syllables splits a segmented word back into its syllables.
func Syllables(segmented string) []string {
	return strings.Split(segmented, Separator)
}
