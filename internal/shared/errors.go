// Package shared defines sentinel errors and small utilities used across
// the server layers. Callers match the sentinels with errors.Is.
package shared

import "errors"

var (
	// ErrNotFound reports that a key or record is absent from the store.
	// Absence is an expected state, not an infrastructure problem.
	ErrNotFound = errors.New("not found")

	// ErrEmptyUsername reports an operation invoked without an owner.
	ErrEmptyUsername = errors.New("empty username")

	// ErrEmptyBody reports a note operation with an empty body.
	ErrEmptyBody = errors.New("empty note body")
)
