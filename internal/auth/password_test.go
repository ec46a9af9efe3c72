package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomchat/backend/internal/auth"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, hasher.Verify("s3cret", hash))
	assert.False(t, hasher.Verify("wrong", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	first, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
