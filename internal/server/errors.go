// Package server provides the HTTP API for syllable segmentation and the word bank.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCredentials indicates a wrong admin password.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid password"
}

// ErrWordNotFound indicates a word bank lookup matched nothing.
type ErrWordNotFound struct {
	Key string
}

func (e *ErrWordNotFound) Error() string {
	return fmt.Sprintf("word not found: %s", e.Key)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		credErr     *ErrInvalidCredentials
		notFoundErr *ErrWordNotFound
		validErr    *ErrValidation
	)
	switch {
	case errors.As(err, &credErr):
		return http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &validErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// validationError converts validator output into an ErrValidation for the
// first failing field.
func validationError(err error) *ErrValidation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return &ErrValidation{Field: ve.Namespace(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
