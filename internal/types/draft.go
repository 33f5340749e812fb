package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Draft is an editable generated resume document held between generation and rendering.
type Draft struct {
	ID             uuid.UUID  `json:"id"`
	Layout         LayoutMode `json:"layout"`
	Text           string     `json:"text"`
	JobDescription string     `json:"job_description,omitempty"`
	Model          string     `json:"model,omitempty"`
	GenerationErr  string     `json:"generation_error,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// GenerateRequest asks the generation collaborator for a new draft. When
// AboutMe is empty the named profile (or the default one) supplies it.
type GenerateRequest struct {
	AboutMe        string `json:"about_me,omitempty"`
	Profile        string `json:"profile,omitempty" validate:"omitempty,max=64"`
	JobDescription string `json:"job_description" validate:"required"`
	Layout         string `json:"layout,omitempty" validate:"omitempty,oneof=sidebar single-page dubai india single"`
	Tier           string `json:"tier,omitempty" validate:"omitempty,oneof=lite standard advanced"`
}

// UpdateDraftRequest replaces the text of an existing draft with a user edit.
type UpdateDraftRequest struct {
	Text string `json:"text" validate:"required"`
}

// RenderRequest renders arbitrary text without a stored draft.
// Photo is base64 in JSON.
type RenderRequest struct {
	Text           string `json:"text" validate:"required"`
	Layout         string `json:"layout,omitempty" validate:"omitempty,oneof=sidebar single-page dubai india single"`
	DisplayName    string `json:"display_name,omitempty" validate:"max=80"`
	JobDescription string `json:"job_description,omitempty"`
	Photo          []byte `json:"photo,omitempty" validate:"max=10485760"`
}

// RenderDraftRequest renders a stored draft. The body is optional.
type RenderDraftRequest struct {
	DisplayName string `json:"display_name,omitempty" validate:"max=80"`
	Photo       []byte `json:"photo,omitempty" validate:"max=10485760"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateDraftRequest using the validator.
func (r *UpdateDraftRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RenderRequest using the validator.
func (r *RenderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RenderDraftRequest using the validator.
func (r *RenderDraftRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
