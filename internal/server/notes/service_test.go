package notes

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickjot/quickjot/internal/logging"
	"github.com/quickjot/quickjot/internal/shared"
)

type fakeRepo struct {
	byUser map[string]map[uuid.UUID]*Note

	saveErr error
	listErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUser: map[string]map[uuid.UUID]*Note{}}
}

func (r *fakeRepo) List(ctx context.Context, username string) ([]Note, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []Note
	for _, n := range r.byUser[username] {
		out = append(out, *n)
	}
	return out, nil
}

func (r *fakeRepo) Get(ctx context.Context, username string, id uuid.UUID) (*Note, error) {
	n, ok := r.byUser[username][id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeRepo) Save(ctx context.Context, note *Note) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	u, ok := r.byUser[note.Username]
	if !ok {
		u = map[uuid.UUID]*Note{}
		r.byUser[note.Username] = u
	}
	cp := *note
	u[note.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, username string, id uuid.UUID) error {
	if _, ok := r.byUser[username][id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.byUser[username], id)
	return nil
}

func newNoteService(repo Repository) *Service {
	return NewService(repo, logging.NopLogger{})
}

func TestCreate_FillsIdentityAndTimestamps(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)

	fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	n, err := svc.Create(context.Background(), "alice", "# hello")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.Equal(t, "alice", n.Username)
	assert.Equal(t, "# hello", n.Body)
	assert.Equal(t, fixed, n.CreatedAt)
	assert.Equal(t, fixed, n.UpdatedAt)

	stored, err := repo.Get(context.Background(), "alice", n.ID)
	require.NoError(t, err)
	assert.Equal(t, n.Body, stored.Body)
}

func TestCreate_Validation(t *testing.T) {
	svc := newNoteService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "body")
	assert.ErrorIs(t, err, shared.ErrEmptyUsername)

	_, err = svc.Create(ctx, "alice", "")
	assert.ErrorIs(t, err, shared.ErrEmptyBody)
}

func TestUpdate_ReplacesBodyAndBumpsUpdatedAt(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := context.Background()

	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	n, err := svc.Create(ctx, "alice", "old")
	require.NoError(t, err)

	edited := created.Add(time.Hour)
	svc.now = func() time.Time { return edited }

	updated, err := svc.Update(ctx, "alice", n.ID, "new")
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Body)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, edited, updated.UpdatedAt)
}

func TestUpdate_UnknownNote(t *testing.T) {
	svc := newNoteService(newFakeRepo())

	_, err := svc.Update(context.Background(), "alice", uuid.New(), "body")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUpdate_OtherUsersNoteIsInvisible(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := context.Background()

	n, err := svc.Create(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = svc.Update(ctx, "bob", n.ID, "hijack")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDelete_UnknownNote(t *testing.T) {
	svc := newNoteService(newFakeRepo())

	err := svc.Delete(context.Background(), "alice", uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestList_RequiresUsername(t *testing.T) {
	svc := newNoteService(newFakeRepo())

	_, err := svc.List(context.Background(), "")
	assert.ErrorIs(t, err, shared.ErrEmptyUsername)
}

func TestList_ReturnsOwnNotesOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", "a1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", "b1")
	require.NoError(t, err)

	got, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].Body)
}
