package db

import (
	"time"

	"github.com/google/uuid"
)

// Render is one recorded PDF render.
type Render struct {
	ID        uuid.UUID  `json:"id"`
	DraftID   *uuid.UUID `json:"draft_id,omitempty"`
	Layout    string     `json:"layout"`
	Filename  string     `json:"filename"`
	Pages     int        `json:"pages"`
	SizeBytes int        `json:"size_bytes"`
	CreatedAt time.Time  `json:"created_at"`
}
