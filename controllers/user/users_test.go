package userControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	token, hashed, err := generateResetToken()
	require.NoError(t, err)

	assert.Len(t, token, 40)  // 20 random bytes, hex encoded
	assert.Len(t, hashed, 64) // sha256 hex digest
	assert.NotEqual(t, token, hashed)

	// the stored hash must be reproducible from the emailed token
	assert.Equal(t, hashed, hashResetToken(token))
}

func TestGenerateResetTokenIsRandom(t *testing.T) {
	first, _, err := generateResetToken()
	require.NoError(t, err)
	second, _, err := generateResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
