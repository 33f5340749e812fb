package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/bethejack/internal/drafts"
	"github.com/jonathan/bethejack/internal/types"
)

const draftColumns = `id, layout, text, job_description, model, generation_error, created_at, updated_at`

func scanDraft(row pgx.Row) (types.Draft, error) {
	var d types.Draft
	var layout string
	err := row.Scan(&d.ID, &layout, &d.Text, &d.JobDescription, &d.Model, &d.GenerationErr, &d.CreatedAt, &d.UpdatedAt)
	d.Layout = types.LayoutMode(layout)
	return d, err
}

// CreateDraft inserts a draft. ID and timestamps are filled in when unset.
func (db *DB) CreateDraft(ctx context.Context, d types.Draft) (types.Draft, error) {
	d = drafts.New(d, time.Now())
	_, err := db.pool.Exec(ctx,
		`INSERT INTO drafts (`+draftColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, string(d.Layout), d.Text, d.JobDescription, d.Model, d.GenerationErr, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return types.Draft{}, fmt.Errorf("failed to create draft: %w", err)
	}
	return d, nil
}

// GetDraft retrieves a draft by ID. Returns nil when it does not exist.
func (db *DB) GetDraft(ctx context.Context, id uuid.UUID) (*types.Draft, error) {
	d, err := scanDraft(db.pool.QueryRow(ctx,
		`SELECT `+draftColumns+` FROM drafts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return &d, nil
}

// UpdateDraftText replaces the text of a draft. Returns nil when it does not exist.
func (db *DB) UpdateDraftText(ctx context.Context, id uuid.UUID, text string) (*types.Draft, error) {
	d, err := scanDraft(db.pool.QueryRow(ctx,
		`UPDATE drafts SET text = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+draftColumns,
		id, text))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	return &d, nil
}

// ListDrafts retrieves the most recently updated drafts
func (db *DB) ListDrafts(ctx context.Context, limit int) ([]types.Draft, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+draftColumns+` FROM drafts ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var out []types.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Drafts adapts DB to drafts.Store.
type Drafts struct {
	DB *DB
}

func (s Drafts) Create(ctx context.Context, d types.Draft) (types.Draft, error) {
	return s.DB.CreateDraft(ctx, d)
}

func (s Drafts) Get(ctx context.Context, id uuid.UUID) (types.Draft, error) {
	return found(s.DB.GetDraft(ctx, id))
}

func (s Drafts) UpdateText(ctx context.Context, id uuid.UUID, text string) (types.Draft, error) {
	return found(s.DB.UpdateDraftText(ctx, id, text))
}

func (s Drafts) List(ctx context.Context, limit int) ([]types.Draft, error) {
	return s.DB.ListDrafts(ctx, limit)
}

func found(d *types.Draft, err error) (types.Draft, error) {
	if err != nil {
		return types.Draft{}, err
	}
	if d == nil {
		return types.Draft{}, drafts.ErrNotFound
	}
	return *d, nil
}
