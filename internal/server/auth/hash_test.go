package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashToken("T1"), HashToken("T1"))
}

func TestHashToken_HexDigest(t *testing.T) {
	d := HashToken("some-opaque-token")
	require.Len(t, d, 64)

	_, err := hex.DecodeString(d)
	assert.NoError(t, err)
}

func TestHashToken_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, HashToken("T1"), HashToken("T2"))
}

func TestHashToken_KnownVector(t *testing.T) {
	// SHA-256 of the empty string.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashToken(""))
}
