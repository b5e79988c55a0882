package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShareToken_Shape(t *testing.T) {
	token, err := GenerateShareToken()

	require.NoError(t, err)
	assert.Len(t, token, ShareTokenLength)
	assert.Regexp(t, `^[0-9a-f]{16}$`, token)
	assert.True(t, IsValidShareToken(token))
}

func TestGenerateShareToken_Unique(t *testing.T) {
	// 60 random bits per token; 10k draws collide with probability ~4e-11.
	const n = 10000
	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		token, err := GenerateShareToken()
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup, "duplicate token after %d generations", i)
		seen[token] = struct{}{}
	}
}

func TestIsValidShareToken(t *testing.T) {
	assert.True(t, IsValidShareToken("0123456789abcdef"))
	assert.False(t, IsValidShareToken("0123456789ABCDEF"))
	assert.False(t, IsValidShareToken("0123456789abcde"))
	assert.False(t, IsValidShareToken("0123456789abcdefg"))
	assert.False(t, IsValidShareToken("0123-56789abcdef"))
	assert.False(t, IsValidShareToken(""))
}
