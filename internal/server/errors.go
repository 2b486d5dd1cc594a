package server

import (
	"errors"
	"net/http"

	"github.com/resumify/resumify/internal/store"
	"github.com/resumify/resumify/internal/suggest"
	"github.com/resumify/resumify/schemas"
)

// ErrNotConfirmed indicates a destructive operation without confirmation
type ErrNotConfirmed struct{}

func (e *ErrNotConfirmed) Error() string {
	return "operation requires explicit confirmation"
}

// ErrRecordNotFound indicates the addressed record does not exist
type ErrRecordNotFound struct {
	Section string
	ID      string
}

func (e *ErrRecordNotFound) Error() string {
	return "record not found in " + e.Section + ": " + e.ID
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var unknownSection *store.UnknownSectionError
	var recordErr *store.RecordError
	var validationErr *schemas.ValidationError
	var notFound *ErrRecordNotFound
	var notConfirmed *ErrNotConfirmed

	switch {
	case errors.As(err, &unknownSection):
		return http.StatusNotFound
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &recordErr):
		return http.StatusBadRequest
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notConfirmed):
		return http.StatusBadRequest
	case errors.Is(err, suggest.ErrNoRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
