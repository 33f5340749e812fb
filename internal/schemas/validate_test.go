package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid", `{"about_me": "Backend developer since 2018"}`, false},
		{"empty text is allowed", `{"about_me": ""}`, false},
		{"unknown fields ignored", `{"about_me": "x", "photo": "ignored"}`, false},
		{"missing about_me", `{"summary": "x"}`, true},
		{"wrong type", `{"about_me": 42}`, true},
		{"not an object", `["about_me"]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile([]byte(tt.doc))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateProfile_MalformedJSON(t *testing.T) {
	err := ValidateProfile([]byte(`{"about_me": `))
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing.schema.json", loadErr.Path)

	// the failure is remembered, not retried
	again := Validate("missing.schema.json", []byte(`{}`))
	assert.Same(t, err, again)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	err := ValidateProfile([]byte(`{"about_me": 1}`))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "about_me", validationErr.Errors[0].Field)
	assert.Equal(t, ProfileSchema, validationErr.Schema)
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{
		Schema: ProfileSchema,
		Errors: []FieldError{{Field: "(root)", Message: "about_me is required"}},
	}
	assert.Equal(t, "profile.schema.json: 1 problem(s)\n  1. (root): about_me is required", err.Error())
}
