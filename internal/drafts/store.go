// Package drafts keeps editable resume drafts between generation and rendering.
package drafts

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/bethejack/internal/types"
)

// ErrNotFound is returned when no draft has the requested id.
var ErrNotFound = errors.New("draft not found")

// Store persists drafts.
type Store interface {
	Create(ctx context.Context, d types.Draft) (types.Draft, error)
	Get(ctx context.Context, id uuid.UUID) (types.Draft, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (types.Draft, error)
	List(ctx context.Context, limit int) ([]types.Draft, error)
}

// New fills in the id and timestamps of a draft about to be created.
func New(d types.Draft, now time.Time) types.Draft {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Layout == "" {
		d.Layout = types.DefaultLayout
	}
	d.CreatedAt = now.UTC()
	d.UpdatedAt = d.CreatedAt
	return d
}

// MemoryStore is a process-local Store. Each draft is guarded by its own lock so
// edits to different drafts never contend.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*entry
	now    func() time.Time
}

type entry struct {
	mu    sync.Mutex
	draft types.Draft
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[uuid.UUID]*entry),
		now:    time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, d types.Draft) (types.Draft, error) {
	d = New(d, s.now())
	s.mu.Lock()
	s.drafts[d.ID] = &entry{draft: d}
	s.mu.Unlock()
	return d, nil
}

func (s *MemoryStore) lookup(id uuid.UUID) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.drafts[id]
	return e, ok
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (types.Draft, error) {
	e, ok := s.lookup(id)
	if !ok {
		return types.Draft{}, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft, nil
}

func (s *MemoryStore) UpdateText(_ context.Context, id uuid.UUID, text string) (types.Draft, error) {
	e, ok := s.lookup(id)
	if !ok {
		return types.Draft{}, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Text = text
	e.draft.UpdatedAt = s.now().UTC()
	return e.draft, nil
}

// List returns the most recently updated drafts first. A limit of zero or less
// returns every draft.
func (s *MemoryStore) List(_ context.Context, limit int) ([]types.Draft, error) {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.drafts))
	for _, e := range s.drafts {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]types.Draft, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.draft)
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
