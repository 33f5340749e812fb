package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateRequest
		wantErr bool
	}{
		{"minimal", GenerateRequest{JobDescription: "Go engineer"}, false},
		{"full", GenerateRequest{AboutMe: "x", Profile: "me", JobDescription: "Go", Layout: "single-page", Tier: "lite"}, false},
		{"regional alias", GenerateRequest{JobDescription: "Go", Layout: "dubai"}, false},
		{"missing job description", GenerateRequest{AboutMe: "x"}, true},
		{"unknown layout", GenerateRequest{JobDescription: "Go", Layout: "landscape"}, true},
		{"unknown tier", GenerateRequest{JobDescription: "Go", Tier: "ultra"}, true},
		{"long profile name", GenerateRequest{JobDescription: "Go", Profile: strings.Repeat("a", 65)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateDraftRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateDraftRequest{Text: "NAME"}).Validate())
	assert.Error(t, (&UpdateDraftRequest{}).Validate())
}

func TestRenderRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RenderRequest{Text: "x", Layout: "sidebar"}).Validate())
	assert.Error(t, (&RenderRequest{}).Validate())
	assert.Error(t, (&RenderRequest{Text: "x", DisplayName: strings.Repeat("n", 81)}).Validate())
	assert.Error(t, (&RenderRequest{Text: "x", Photo: make([]byte, 10<<20+1)}).Validate())
}

func TestRenderDraftRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RenderDraftRequest{}).Validate())
	assert.Error(t, (&RenderDraftRequest{DisplayName: strings.Repeat("n", 81)}).Validate())
}
