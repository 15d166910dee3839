package syllable

import "regexp"

var vowelGroupPattern = regexp.MustCompile(`(?i)[aeiouy]+`)

// VowelGroup is a maximal run of vowel letters in a written word.
// Start and End are half-open byte offsets into the word.
type VowelGroup struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// FindVowelGroups returns the vowel-letter runs of word in order. The letter
// y always counts as a vowel. Text keeps the original case.
func FindVowelGroups(word string) []VowelGroup {
	locs := vowelGroupPattern.FindAllStringIndex(word, -1)
	groups := make([]VowelGroup, 0, len(locs))
	for _, loc := range locs {
		groups = append(groups, VowelGroup{
			Start: loc[0],
			End:   loc[1],
			Text:  word[loc[0]:loc[1]],
		})
	}
	return groups
}

// Reconcile trims trailing vowel groups until there are no more groups than
// target, always keeping at least one. The tail group is dropped whatever it
// contains; interior groups are never touched.
func Reconcile(groups []VowelGroup, target int) []VowelGroup {
	for len(groups) > target && len(groups) > 1 {
		groups = groups[:len(groups)-1]
	}
	return groups
}
