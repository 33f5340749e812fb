// Package profile loads and stores the skeleton work history drafts are generated from.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/jonathan/bethejack/internal/schemas"
	"github.com/jonathan/bethejack/internal/types"
)

// DefaultName is the profile used when none is named.
const DefaultName = "default"

// DefaultAboutMe seeds the editor when no profile has been saved yet.
const DefaultAboutMe = `Name: Alex Morgan
Location: Porto, Portugal | Nationality: Portuguese | Visa: EU citizen
Email: alex.morgan@example.com | Phone: +351 000 000 000 | LinkedIn: linkedin.com/in/alex-morgan-example

Experience:
- Junior Developer, Harbor Logistics (2016-2018): internal tools, SQL reports
- Software Engineer, Tidepool Payments (2018-2021): payment APIs, on-call
- Senior Engineer, Lumen Health (2021-present): platform team, cloud migration

Education: BSc Computer Science, University of Porto, 2016
Certifications: AWS Solutions Architect Associate
Skills: Go, Python, PostgreSQL, Kubernetes, Terraform`

var (
	// ErrNotFound is returned by a Store when no profile has the requested name.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidName is returned for names that are not usable as a key.
	ErrInvalidName = errors.New("invalid profile name")
)

// Store persists named profiles.
type Store interface {
	Load(ctx context.Context, name string) (types.Profile, error)
	Save(ctx context.Context, name string, p types.Profile) error
}

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateName rejects names that cannot be used as a file name or key.
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w %q: use 1-64 letters, digits, '-' or '_'", ErrInvalidName, name)
	}
	return nil
}

// Default returns the built-in profile.
func Default() types.Profile {
	return types.Profile{AboutMe: DefaultAboutMe}
}

// Load reads a profile document. The document must be a JSON object with a
// string about_me field; other fields are ignored.
func Load(r io.Reader) (types.Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return types.Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes a profile document.
func Parse(data []byte) (types.Profile, error) {
	if err := schemas.ValidateProfile(data); err != nil {
		return types.Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return types.Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return p, nil
}

// Save writes p as an indented JSON document.
func Save(w io.Writer, p types.Profile) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal encodes p the way Save writes it.
func Marshal(p types.Profile) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadOrDefault loads a profile and falls back to Default when it does not exist.
func LoadOrDefault(ctx context.Context, store Store, name string) (types.Profile, error) {
	p, err := store.Load(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return p, err
}
