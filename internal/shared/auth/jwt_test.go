package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifySession(t *testing.T) {
	signer, err := NewSigner("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := signer.SignSession(Identity{UserID: "user-1", Name: "Ana"})
	require.NoError(t, err)

	id, err := signer.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "user-1", Name: "Ana"}, id)
}

func TestVerifySessionRejectsOtherSecret(t *testing.T) {
	a, err := NewSigner("secret-a", time.Hour)
	require.NoError(t, err)
	b, err := NewSigner("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := a.SignSession(Identity{UserID: "user-1"})
	require.NoError(t, err)

	_, err = b.VerifySession(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionRejectsExpired(t *testing.T) {
	signer, err := NewSigner("test-secret", time.Minute)
	require.NoError(t, err)
	issued := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return issued }

	token, err := signer.SignSession(Identity{UserID: "user-1"})
	require.NoError(t, err)

	signer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = signer.VerifySession(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionRejectsGarbage(t *testing.T) {
	signer, err := NewSigner("test-secret", time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := signer.VerifySession(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestNewSignerRequiresSecret(t *testing.T) {
	_, err := NewSigner("  ", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}
