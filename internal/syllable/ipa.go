package syllable

import "strings"

// VowelNucleus is one vowel sound found in a transcription.
type VowelNucleus struct {
	Phoneme  string `json:"phoneme"`
	Stressed bool   `json:"stressed"`
	Short    bool   `json:"short"`
}

// transcriptionCleaner normalises plain colons to the IPA length mark and
// strips slash, bracket and backslash delimiters.
var transcriptionCleaner = strings.NewReplacer(
	":", string(LengthMark),
	"/", "",
	"[", "",
	"]", "",
	`\`, "",
)

// CleanTranscription returns the transcription with delimiters removed and
// length marks normalised.
func CleanTranscription(transcription string) string {
	return transcriptionCleaner.Replace(transcription)
}

// ParseVowels scans a transcription left to right and returns its vowel
// nuclei. A stress mark applies to the next nucleus found. Unrecognised
// symbols are skipped, so malformed input yields a shorter (possibly empty)
// result rather than an error.
func (r Rules) ParseVowels(transcription string) []VowelNucleus {
	symbols := []rune(CleanTranscription(transcription))

	var nuclei []VowelNucleus
	stressed := false

	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c == PrimaryStress || c == SecondaryStress {
			stressed = true
			continue
		}
		if !isIPAVowel(c) {
			continue
		}

		phoneme := []rune{c}
		if i+1 < len(symbols) {
			next := symbols[i+1]
			switch {
			case next == LengthMark:
				phoneme = append(phoneme, next)
				i++
			case isIPAGlide(next):
				phoneme = append(phoneme, next)
				i++
				// a length mark after a diphthong is skipped, not kept
				if i+1 < len(symbols) && symbols[i+1] == LengthMark {
					i++
				}
			}
		}

		text := string(phoneme)
		nuclei = append(nuclei, VowelNucleus{
			Phoneme:  text,
			Stressed: stressed,
			Short:    r.IsShort(text),
		})
		stressed = false
	}

	return nuclei
}

// ParseVowels scans a transcription with the default rules.
func ParseVowels(transcription string) []VowelNucleus {
	return defaultRules.ParseVowels(transcription)
}
