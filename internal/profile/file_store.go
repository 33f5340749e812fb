package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/bethejack/internal/types"
)

// FileStore keeps each profile as <Dir>/<name>.json.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.Dir, name+".json")
}

// Load reads a profile by name.
func (s *FileStore) Load(_ context.Context, name string) (types.Profile, error) {
	if err := ValidateName(name); err != nil {
		return types.Profile{}, err
	}
	f, err := os.Open(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return types.Profile{}, ErrNotFound
	}
	if err != nil {
		return types.Profile{}, fmt.Errorf("failed to open profile: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Save writes a profile by name. The file is replaced atomically.
func (s *FileStore) Save(_ context.Context, name string, p types.Profile) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
