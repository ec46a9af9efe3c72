package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomchat/backend/internal/auth"
)

func newTokenService() *auth.TokenService {
	return auth.NewTokenService("access-secret", "refresh-secret")
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTokenService()
	userID := uuid.New()

	access, err := svc.CreateAccessToken(userID)
	require.NoError(t, err)
	refresh, err := svc.CreateRefreshToken(userID)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	gotAccess, err := svc.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, gotAccess)

	gotRefresh, err := svc.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, gotRefresh)
}

// TestTokenClassNotInterchangeable verifies a refresh token is rejected
// where an access token is expected, and vice versa.
func TestTokenClassNotInterchangeable(t *testing.T) {
	svc := newTokenService()
	userID := uuid.New()

	access, err := svc.CreateAccessToken(userID)
	require.NoError(t, err)
	refresh, err := svc.CreateRefreshToken(userID)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	svc := newTokenService()

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.VerifyAccessToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	other := auth.NewTokenService("other-access", "other-refresh")
	token, err := other.CreateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = newTokenService().VerifyAccessToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
