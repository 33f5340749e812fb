package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/bethejack/internal/drafts"
	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation *ErrValidation
		fields     validator.ValidationErrors
		schema     *schemas.ValidationError
		decode     *schemas.DecodeError
	)
	switch {
	case errors.Is(err, drafts.ErrNotFound), errors.Is(err, profile.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &fields),
		errors.As(err, &schema), errors.As(err, &decode),
		errors.Is(err, profile.ErrInvalidName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
