// Package auth implements session-token verification against the key-value
// store, plus issuance and revocation of token records.
//
// The store maps HashToken(token) -> username in the auth keyspace. A
// record exists exactly while the session is valid; expiry is the store's
// TTL mechanism, not logic in this package.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickjot/quickjot/internal/logging"
	"github.com/quickjot/quickjot/internal/server/kv"
	"github.com/quickjot/quickjot/internal/shared"
)

// tokenBytes is the entropy of an issued session token. The cookie value
// is twice this many hex characters.
const tokenBytes = 32

type Service struct {
	pool       kv.Pool
	logger     logging.Logger
	sessionTTL time.Duration
}

func NewService(pool kv.Pool, logger logging.Logger, sessionTTL time.Duration) *Service {
	return &Service{
		pool:       pool,
		logger:     logger.With("module", "auth"),
		sessionTTL: sessionTTL,
	}
}

// Verify checks the claimed username against the token record in the
// store and classifies the result. The connection lease is released before
// the caller acts on the outcome, so cookie handling and rendering never
// hold a pooled connection.
func (s *Service) Verify(ctx context.Context, username, token string) Outcome {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		s.logger.Error(ctx, "acquiring store connection failed", "error", err)
		return OutcomeStoreFailure
	}
	defer conn.Release()

	conn.Use(kv.KeyspaceAuth)

	owner, err := conn.Get(ctx, HashToken(token))
	switch {
	case err == nil && owner == username:
		return OutcomeAuthenticated
	case err == nil:
		// Token exists but is paired with someone else. Answer exactly as
		// for a missing token so the two cases stay indistinguishable.
		return OutcomeRejected
	case errors.Is(err, shared.ErrNotFound):
		return OutcomeRejected
	default:
		s.logger.Error(ctx, "session lookup failed", "error", err)
		return OutcomeStoreFailure
	}
}

// Issue creates a session for username: it generates a fresh random token,
// stores its digest with the configured TTL, and returns the plaintext
// token exactly once. The plaintext is never persisted anywhere.
func (s *Service) Issue(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", shared.ErrEmptyUsername
	}

	token, err := shared.MakeRandHexString(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("acquire store connection: %w", err)
	}
	defer conn.Release()

	conn.Use(kv.KeyspaceAuth)

	if err := conn.Set(ctx, HashToken(token), username, s.sessionTTL); err != nil {
		return "", fmt.Errorf("store token record: %w", err)
	}

	s.logger.Info(ctx, "session issued", "username", username)
	return token, nil
}

// Revoke deletes the token record, ending the session. Revoking a token
// that is already gone is a successful no-op, so logout stays idempotent.
func (s *Service) Revoke(ctx context.Context, token string) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire store connection: %w", err)
	}
	defer conn.Release()

	conn.Use(kv.KeyspaceAuth)

	if err := conn.Del(ctx, HashToken(token)); err != nil {
		return fmt.Errorf("delete token record: %w", err)
	}
	return nil
}
