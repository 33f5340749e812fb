package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrNoCredentials is returned when no source yields an API key.
var ErrNoCredentials = errors.New("no API key found")

// CredentialSource locates the API key for a provider.
type CredentialSource interface {
	APIKey(ctx context.Context) (string, error)
}

// StaticKey is a key supplied directly, e.g. from a flag.
type StaticKey string

// APIKey returns the key, or ErrNoCredentials when it is empty.
func (k StaticKey) APIKey(context.Context) (string, error) {
	key := strings.TrimSpace(string(k))
	if key == "" {
		return "", ErrNoCredentials
	}
	return key, nil
}

// EnvKey reads the key from an environment variable.
type EnvKey struct {
	Var string
}

func (e EnvKey) APIKey(context.Context) (string, error) {
	key := strings.TrimSpace(os.Getenv(e.Var))
	if key == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrNoCredentials, e.Var)
	}
	return key, nil
}

// DotEnvKey reads the key from a dotenv file without touching the process
// environment. A missing file is treated as no key.
type DotEnvKey struct {
	Path string
	Var  string
}

func (d DotEnvKey) APIKey(context.Context) (string, error) {
	path := d.Path
	if path == "" {
		path = ".env"
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s not found", ErrNoCredentials, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	key := strings.TrimSpace(values[d.Var])
	if key == "" {
		return "", fmt.Errorf("%w: %s not set in %s", ErrNoCredentials, d.Var, path)
	}
	return key, nil
}

// Chain tries each source in order and returns the first key found. Errors
// other than ErrNoCredentials stop the search.
type Chain []CredentialSource

func (c Chain) APIKey(ctx context.Context) (string, error) {
	for _, src := range c {
		key, err := src.APIKey(ctx)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, ErrNoCredentials) {
			return "", err
		}
	}
	return "", ErrNoCredentials
}

// APIKeyEnvVar returns the conventional environment variable of a provider.
func APIKeyEnvVar(p Provider) string {
	if p == ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// DefaultCredentials looks for the provider key in an explicit value, then the
// environment, then a .env file in the working directory.
func DefaultCredentials(p Provider, explicit string) CredentialSource {
	envVar := APIKeyEnvVar(p)
	return Chain{
		StaticKey(explicit),
		EnvKey{Var: envVar},
		DotEnvKey{Path: ".env", Var: envVar},
	}
}
