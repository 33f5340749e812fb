package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RecordRender stores a render in the history and returns its ID
func (db *DB) RecordRender(ctx context.Context, r Render) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO renders (draft_id, layout, filename, pages, size_bytes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		r.DraftID, r.Layout, r.Filename, r.Pages, r.SizeBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record render: %w", err)
	}
	return id, nil
}

// ListRenders retrieves the render history of a draft, newest first
func (db *DB) ListRenders(ctx context.Context, draftID uuid.UUID) ([]Render, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, draft_id, layout, filename, pages, size_bytes, created_at
		 FROM renders WHERE draft_id = $1 ORDER BY created_at DESC`,
		draftID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer rows.Close()

	var renders []Render
	for rows.Next() {
		var r Render
		if err := rows.Scan(&r.ID, &r.DraftID, &r.Layout, &r.Filename, &r.Pages, &r.SizeBytes, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan render: %w", err)
		}
		renders = append(renders, r)
	}
	return renders, rows.Err()
}
