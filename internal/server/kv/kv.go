// Package kv provides pooled access to the backing key-value store.
//
// A Pool hands out exclusively-owned connection leases. A lease covers one
// logical operation (a session check, a note read or write) and must be
// released as soon as the store round-trip completes, before any rendering
// or response work happens. Keyspaces separate session records from note
// data; selecting one is scoped to the current lease.
package kv

import (
	"context"
	"time"
)

// Keyspace is a logical namespace inside the store. Keys from different
// keyspaces never collide.
type Keyspace string

const (
	// KeyspaceAuth holds session token records: digest -> username.
	KeyspaceAuth Keyspace = "auth"
	// KeyspaceNotes holds per-user note collections.
	KeyspaceNotes Keyspace = "notes"
)

// Pool hands out connection leases. Implementations must be safe for
// concurrent use by many in-flight requests.
type Pool interface {
	// Acquire leases a connection. A failed acquisition is an
	// infrastructure problem, never a statement about user data.
	Acquire(ctx context.Context) (Conn, error)
}

// Conn is a leased store connection, owned exclusively by the borrower
// until Release. Absent keys are reported as shared.ErrNotFound; any other
// error means the store itself misbehaved.
type Conn interface {
	// Use selects the keyspace for subsequent commands on this lease.
	Use(ns Keyspace)

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error

	HSet(ctx context.Context, key, field, value string) error
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	// HDel removes fields and reports how many existed.
	HDel(ctx context.Context, key string, fields ...string) (int64, error)

	// Release returns the connection to the pool. Safe to call more than
	// once; only the first call has an effect.
	Release()
}
