package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/bethejack/internal/drafts"
	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/schemas"
	"github.com/jonathan/bethejack/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	fieldErr := (&types.UpdateDraftRequest{}).Validate()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"draft not found", fmt.Errorf("get: %w", drafts.ErrNotFound), http.StatusNotFound},
		{"profile not found", profile.ErrNotFound, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "id", Message: "bad"}, http.StatusBadRequest},
		{"validator fields", fieldErr, http.StatusBadRequest},
		{"schema", fmt.Errorf("invalid profile: %w", &schemas.ValidationError{}), http.StatusBadRequest},
		{"not json", &schemas.DecodeError{Cause: errors.New("eof")}, http.StatusBadRequest},
		{"broken schema", &schemas.SchemaLoadError{Path: "x"}, http.StatusInternalServerError},
		{"profile name", profile.ValidateName("a/b"), http.StatusBadRequest},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrValidation_Message(t *testing.T) {
	err := &ErrValidation{Field: "limit", Message: "must be positive"}
	assert.Equal(t, "validation error: limit - must be positive", err.Error())
}
