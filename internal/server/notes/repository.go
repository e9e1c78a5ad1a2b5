package notes

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists per-user note collections. Lookups are always scoped
// by username; one user's collection can never answer another's query.
// Absent notes are reported as shared.ErrNotFound.
type Repository interface {
	List(ctx context.Context, username string) ([]Note, error)
	Get(ctx context.Context, username string, id uuid.UUID) (*Note, error)
	Save(ctx context.Context, note *Note) error
	Delete(ctx context.Context, username string, id uuid.UUID) error
}
