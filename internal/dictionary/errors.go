package dictionary

import "fmt"

// NotFoundError is returned when a provider has no transcription for a word.
type NotFoundError struct {
	Word     string
	Provider string
}

func (e *NotFoundError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("no transcription for %q from %s", e.Word, e.Provider)
	}
	return fmt.Sprintf("no transcription for %q", e.Word)
}

// LookupError wraps a provider failure other than a missing word.
type LookupError struct {
	Word     string
	Provider string
	Cause    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup for %q failed: %v", e.Provider, e.Word, e.Cause)
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}
