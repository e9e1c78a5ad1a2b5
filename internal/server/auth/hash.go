package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken turns a raw session token into its lookup digest: SHA-256,
// lowercase hex. The store only ever sees digests; a leaked dump cannot be
// replayed as cookies. Tokens are high-entropy, so no salting is involved.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
