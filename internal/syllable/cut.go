package syllable

import "unicode"

// CutRule names the rule that placed a syllable boundary.
type CutRule string

// Cut rules, in the order they are tried.
const (
	RuleAdjacent        CutRule = "adjacent"
	RuleClosedSyllable  CutRule = "closed-syllable"
	RuleOpenSyllable    CutRule = "open-syllable"
	RuleDoubled         CutRule = "doubled-consonant"
	RuleDigraph         CutRule = "digraph"
	RuleTrailingDigraph CutRule = "trailing-digraph"
	RuleDefault         CutRule = "default"
)

// ResolveCut decides where to cut the consonant bridge between two vowel
// groups. prev is the nucleus of the vowel before the bridge and may be nil.
// The result is a byte offset into bridge in [0, len(bridge)].
func (r Rules) ResolveCut(bridge string, prev *VowelNucleus) int {
	offset, _ := r.resolveCut(bridge, prev)
	return offset
}

func (r Rules) resolveCut(bridge string, prev *VowelNucleus) (int, CutRule) {
	letters := []rune(bridge)
	n := len(letters)

	// starts[k] is the byte index of letter k in bridge, starts[n] == len(bridge).
	// Invalid bytes count as one letter of width one.
	starts := make([]int, 0, n+1)
	for i := range bridge {
		starts = append(starts, i)
	}
	starts = append(starts, len(bridge))
	byteOffset := func(k int) int { return starts[k] }

	switch {
	case n == 0:
		return 0, RuleAdjacent

	case n == 1:
		if prev != nil && prev.Stressed && prev.Short {
			return byteOffset(1), RuleClosedSyllable
		}
		return 0, RuleOpenSyllable

	case n == 2 && unicode.ToLower(letters[0]) == unicode.ToLower(letters[1]):
		return byteOffset(1), RuleDoubled

	case r.IsDigraph(bridge):
		return 0, RuleDigraph
	}

	// keep a trailing cluster together, pushing what precedes it left
	for i := 0; i < n-1; i++ {
		if r.IsDigraph(bridge[starts[i+1]:]) {
			return byteOffset(i + 1), RuleTrailingDigraph
		}
	}

	return byteOffset(1), RuleDefault
}
