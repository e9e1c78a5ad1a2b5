package notes

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single markup-text note. A note belongs to exactly one user
// and is only ever visible to its owner.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
