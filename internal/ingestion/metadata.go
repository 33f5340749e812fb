package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// JobDescription is a cleaned job posting ready to be handed to the generator.
type JobDescription struct {
	Text      string `json:"text"`
	Source    string `json:"source,omitempty"` // file path, URL, or "-" for stdin
	Platform  string `json:"platform,omitempty"`
	Hash      string `json:"hash"` // SHA256 hex digest of Text
	Timestamp string `json:"timestamp"`
}

func newJobDescription(text, source, platform string) *JobDescription {
	return &JobDescription{
		Text:      text,
		Source:    source,
		Platform:  platform,
		Hash:      computeHash(text),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals the job description to pretty-printed JSON.
func (j *JobDescription) ToJSON() ([]byte, error) {
	b, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job description: %w", err)
	}
	return b, nil
}
