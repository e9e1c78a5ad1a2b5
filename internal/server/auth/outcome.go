package auth

// Outcome is the result of a session verification. It is the only value
// that crosses the verifier's boundary; raw store errors never do.
//
// Rejected and StoreFailure are deliberately distinct: a wrong or absent
// token invalidates the client's cookies, while a broken store must leave
// them alone so the session survives the outage.
type Outcome int

const (
	// OutcomeAuthenticated means the token record matches the claimed user.
	OutcomeAuthenticated Outcome = iota
	// OutcomeRejected means the token is unknown, expired, or belongs to a
	// different user. The caller should discard the session cookies.
	OutcomeRejected
	// OutcomeStoreFailure means the backing store could not answer. The
	// session may still be valid; cookies must not be touched.
	OutcomeStoreFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeRejected:
		return "rejected"
	case OutcomeStoreFailure:
		return "store failure"
	default:
		return "unknown"
	}
}
