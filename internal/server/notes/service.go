// Package notes implements per-user note storage on top of the pooled
// key-value store.
package notes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quickjot/quickjot/internal/logging"
	"github.com/quickjot/quickjot/internal/shared"
)

// Service exposes note CRUD scoped to a username. The username must come
// from a successful session verification for the current request; the
// service itself performs no re-verification.
type Service struct {
	repo   Repository
	logger logging.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("module", "notes"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// List returns all notes of username, oldest first.
func (s *Service) List(ctx context.Context, username string) ([]Note, error) {
	if username == "" {
		return nil, shared.ErrEmptyUsername
	}
	return s.repo.List(ctx, username)
}

// Create stores a new note for username and returns it.
func (s *Service) Create(ctx context.Context, username, body string) (*Note, error) {
	if username == "" {
		return nil, shared.ErrEmptyUsername
	}
	if body == "" {
		return nil, shared.ErrEmptyBody
	}

	now := s.now()
	note := &Note{
		ID:        uuid.New(),
		Username:  username,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, note); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "note created", "username", username, "note_id", note.ID)
	return note, nil
}

// Update replaces the body of an existing note. Returns
// shared.ErrNotFound if username has no note with that id.
func (s *Service) Update(ctx context.Context, username string, id uuid.UUID, body string) (*Note, error) {
	if username == "" {
		return nil, shared.ErrEmptyUsername
	}
	if body == "" {
		return nil, shared.ErrEmptyBody
	}

	note, err := s.repo.Get(ctx, username, id)
	if err != nil {
		return nil, err
	}

	note.Body = body
	note.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, note); err != nil {
		return nil, fmt.Errorf("update note %s: %w", id, err)
	}
	return note, nil
}

// Delete removes a note. Returns shared.ErrNotFound if username has no
// note with that id.
func (s *Service) Delete(ctx context.Context, username string, id uuid.UUID) error {
	if username == "" {
		return shared.ErrEmptyUsername
	}
	return s.repo.Delete(ctx, username, id)
}
