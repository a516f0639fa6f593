// Package server provides the HTTP REST API for the staffing engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/staffing-engine/internal/matching"
	"github.com/jonathan/staffing-engine/internal/selection"
)

// ErrProjectNotFound indicates the project does not exist
type ErrProjectNotFound struct {
	ID uuid.UUID
}

func (e *ErrProjectNotFound) Error() string {
	return fmt.Sprintf("project not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrProjectNotFound
		validation *ErrValidation
		selInput   *selection.InvalidInputError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &selInput):
		return http.StatusBadRequest
	case errors.Is(err, matching.ErrNoCandidates):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
