package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/types"
)

// GetProfile retrieves a profile by name. Returns nil when it does not exist.
func (db *DB) GetProfile(ctx context.Context, name string) (*types.Profile, error) {
	var p types.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT about_me FROM profiles WHERE name = $1`,
		name,
	).Scan(&p.AboutMe)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", name, err)
	}
	return &p, nil
}

// UpsertProfile creates or replaces a profile.
func (db *DB) UpsertProfile(ctx context.Context, name string, p types.Profile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (name, about_me)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET about_me = $2, updated_at = NOW()`,
		name, p.AboutMe,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", name, err)
	}
	return nil
}

// Profiles adapts DB to profile.Store.
type Profiles struct {
	DB *DB
}

func (s Profiles) Load(ctx context.Context, name string) (types.Profile, error) {
	if err := profile.ValidateName(name); err != nil {
		return types.Profile{}, err
	}
	p, err := s.DB.GetProfile(ctx, name)
	if err != nil {
		return types.Profile{}, err
	}
	if p == nil {
		return types.Profile{}, profile.ErrNotFound
	}
	return *p, nil
}

func (s Profiles) Save(ctx context.Context, name string, p types.Profile) error {
	if err := profile.ValidateName(name); err != nil {
		return err
	}
	return s.DB.UpsertProfile(ctx, name, p)
}
