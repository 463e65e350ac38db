package store

import (
	"context"
	"errors"
	"time"
)

// Record is one generated presentation: created after a successful upload,
// never mutated afterwards.
type Record struct {
	ID          string    `json:"id"`
	Link        string    `json:"link"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	FileKey     string    `json:"file_key"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("presentation not found")

// Repository persists and queries presentation records.
type Repository interface {
	// Create stores rec, assigning ID and CreatedAt.
	Create(ctx context.Context, rec *Record) error
	FindByID(ctx context.Context, id string) (*Record, error)
	// FindByOwner returns the owner's records, newest first.
	FindByOwner(ctx context.Context, ownerID string) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
