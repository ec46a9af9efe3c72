package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomchat/backend/internal/domain"
)

func mustEmail(t *testing.T, raw string) domain.Email {
	t.Helper()
	email, err := domain.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func mustPassword(t *testing.T, hashed string) domain.Password {
	t.Helper()
	password, err := domain.NewPassword(hashed)
	require.NoError(t, err)
	return password
}

// TestNewEmail_Normalizes verifies lowercase+trim normalization and that
// normalization is idempotent.
func TestNewEmail_Normalizes(t *testing.T) {
	email, err := domain.NewEmail("  Alice@Example.COM ")

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", email.String())

	// normalize(normalize(s)) == normalize(s)
	again, err := domain.NewEmail(email.String())
	assert.NoError(t, err)
	assert.Equal(t, email.String(), again.String())
}

func TestNewEmail_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "no-at-sign", "a@b", "a@b@c.com", "@example.com"} {
		_, err := domain.NewEmail(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q should be rejected", raw)
	}
}

func TestNewPassword_RejectsEmptyHash(t *testing.T) {
	_, err := domain.NewPassword("")
	assert.ErrorIs(t, err, domain.ErrEmptyPasswordHash)
}

func TestNewUser_IsActiveAndOffline(t *testing.T) {
	user := domain.NewUser(mustEmail(t, "alice@example.com"), mustPassword(t, "hashed"))

	assert.True(t, user.IsActive())
	assert.False(t, user.IsOnline())
	assert.NotEqual(t, [16]byte{}, [16]byte(user.ID()))
}

// TestUser_DeactivateForcesOffline verifies the invariant that a
// deactivated user is always offline.
func TestUser_DeactivateForcesOffline(t *testing.T) {
	user := domain.NewUser(mustEmail(t, "alice@example.com"), mustPassword(t, "hashed"))
	require.NoError(t, user.GoOnline())
	require.True(t, user.IsOnline())

	err := user.Deactivate()

	assert.NoError(t, err)
	assert.False(t, user.IsActive())
	assert.False(t, user.IsOnline())
}

func TestUser_InactiveCannotGoOnline(t *testing.T) {
	user := domain.NewUser(mustEmail(t, "alice@example.com"), mustPassword(t, "hashed"))
	require.NoError(t, user.Deactivate())

	err := user.GoOnline()

	assert.ErrorIs(t, err, domain.ErrUserInactive)
	assert.False(t, user.IsOnline())
}

func TestUser_ActivateDeactivateAreNotIdempotent(t *testing.T) {
	user := domain.NewUser(mustEmail(t, "alice@example.com"), mustPassword(t, "hashed"))

	assert.ErrorIs(t, user.Activate(), domain.ErrUserAlreadyActive)

	require.NoError(t, user.Deactivate())
	assert.ErrorIs(t, user.Deactivate(), domain.ErrUserAlreadyInactive)

	require.NoError(t, user.Activate())
	assert.True(t, user.IsActive())
}
