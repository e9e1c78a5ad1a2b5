package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/quickjot/quickjot/internal/server/kv"
	"github.com/quickjot/quickjot/internal/shared"
)

// RedisRepository stores each user's notes as one hash in the notes
// keyspace: field = note ID, value = JSON-encoded note. Every operation
// takes its own connection lease and releases it before returning.
type RedisRepository struct {
	pool kv.Pool
}

func NewRedisRepository(pool kv.Pool) *RedisRepository {
	return &RedisRepository{pool: pool}
}

func userKey(username string) string {
	return "user:" + username
}

func (r *RedisRepository) List(ctx context.Context, username string) ([]Note, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire store connection: %w", err)
	}
	defer conn.Release()

	conn.Use(kv.KeyspaceNotes)

	fields, err := conn.HGetAll(ctx, userKey(username))
	if err != nil {
		return nil, fmt.Errorf("list notes for %q: %w", username, err)
	}

	result := make([]Note, 0, len(fields))
	for id, raw := range fields {
		var n Note
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			return nil, fmt.Errorf("decode note %q: %w", id, err)
		}
		result = append(result, n)
	}

	// Hash fields come back unordered; present oldest first, with the ID
	// as tiebreaker so the order is stable across requests.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})

	return result, nil
}

func (r *RedisRepository) Get(ctx context.Context, username string, id uuid.UUID) (*Note, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire store connection: %w", err)
	}
	defer conn.Release()

	conn.Use(kv.KeyspaceNotes)

	raw, err := conn.HGet(ctx, userKey(username), id.String())
	if err != nil {
		return nil, fmt.Errorf("get note %s for %q: %w", id, username, err)
	}

	var n Note
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return nil, fmt.Errorf("decode note %s: %w", id, err)
	}
	return &n, nil
}

func (r *RedisRepository) Save(ctx context.Context, note *Note) error {
	raw, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("encode note %s: %w", note.ID, err)
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire store connection: %w", err)
	}
	defer conn.Release()

	conn.Use(kv.KeyspaceNotes)

	if err := conn.HSet(ctx, userKey(note.Username), note.ID.String(), string(raw)); err != nil {
		return fmt.Errorf("save note %s for %q: %w", note.ID, note.Username, err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, username string, id uuid.UUID) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire store connection: %w", err)
	}
	defer conn.Release()

	conn.Use(kv.KeyspaceNotes)

	removed, err := conn.HDel(ctx, userKey(username), id.String())
	if err != nil {
		return fmt.Errorf("delete note %s for %q: %w", id, username, err)
	}
	if removed == 0 {
		return fmt.Errorf("delete note %s for %q: %w", id, username, shared.ErrNotFound)
	}
	return nil
}
