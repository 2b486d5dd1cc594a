package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumify/resumify/internal/store"
	"github.com/resumify/resumify/internal/suggest"
	"github.com/resumify/resumify/schemas"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown section", &store.UnknownSectionError{Section: "hobbies"}, http.StatusNotFound},
		{"record not found", &ErrRecordNotFound{Section: "experience", ID: "x"}, http.StatusNotFound},
		{"record error", &store.RecordError{Section: "experience", Cause: errors.New("bad json")}, http.StatusBadRequest},
		{"schema violation", &schemas.ValidationError{Violations: []string{"skills: wrong type"}}, http.StatusBadRequest},
		{"not confirmed", &ErrNotConfirmed{}, http.StatusBadRequest},
		{"no role", suggest.ErrNoRole, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}
