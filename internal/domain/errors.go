package domain

import (
	"errors"
	"fmt"
)

var (
	ErrGenerationUnavailable    = errors.New("generation unavailable")
	ErrGenerationMalformed      = errors.New("generation malformed")
	ErrSummarizationUnavailable = errors.New("summarization unavailable")
	ErrStoreCorrupt             = errors.New("preference store corrupt")
	ErrStoreMissing             = errors.New("preference store missing")
	ErrMeetingNotFound          = errors.New("meeting not found")
	ErrSecretNotFound           = errors.New("secret not found")
	ErrInvalidConfig            = errors.New("invalid configuration")
)

// StoreMissingError distinguishes a genuine first run from a store that disappeared.
type StoreMissingError struct {
	Path     string
	FirstRun bool
}

func (e *StoreMissingError) Error() string {
	if e.FirstRun {
		return fmt.Sprintf("%s: %s (first run)", ErrStoreMissing, e.Path)
	}

	return fmt.Sprintf("%s: %s (run \"mpa prefs init\" to create an empty store)", ErrStoreMissing, e.Path)
}

func (e *StoreMissingError) Is(target error) bool {
	return target == ErrStoreMissing
}
