package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager([]byte("test-secret"), "api-sosmed")
	require.NoError(t, err)
	return m
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager(nil, "api-sosmed")
	assert.Error(t, err)
}

func TestAccessTTLForRememberPolicy(t *testing.T) {
	m := newTestTokenManager(t)
	assert.Equal(t, 60*time.Minute, m.AccessTTLFor(false))
	assert.Equal(t, 7*24*time.Hour, m.AccessTTLFor(true))
}

func TestGenerateAndParse(t *testing.T) {
	m := newTestTokenManager(t)
	userID := uuid.New()

	token, err := m.Generate(userID, AccessTTL)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "api-sosmed", claims.Issuer)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, AccessTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := newTestTokenManager(t)

	token, err := m.Generate(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := newTestTokenManager(t)
	other, err := NewTokenManager([]byte("other-secret"), "api-sosmed")
	require.NoError(t, err)

	token, err := other.Generate(uuid.New(), AccessTTL)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := newTestTokenManager(t)
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
