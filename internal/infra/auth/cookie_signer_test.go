package auth

import (
	"testing"
	"time"

	"weightwise/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, secret string) *cookieSigner {
	t.Helper()

	signer, err := NewCookieSigner(&config.Config{
		Session: config.SessionConfig{
			Secret: secret,
			TTL:    time.Hour,
		},
	})
	require.NoError(t, err)

	return signer.(*cookieSigner)
}

func TestNewCookieSigner_RequiresSecret(t *testing.T) {
	_, err := NewCookieSigner(&config.Config{})
	assert.Error(t, err)
}

func TestCookieSigner_SignAndParse(t *testing.T) {
	signer := newTestSigner(t, "test-secret")

	token, err := signer.Sign("session-abc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sid, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "session-abc", sid)
}

func TestCookieSigner_RejectsWrongSecret(t *testing.T) {
	signer := newTestSigner(t, "secret-a")
	other := newTestSigner(t, "secret-b")

	token, err := signer.Sign("session-abc")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestCookieSigner_RejectsExpiredToken(t *testing.T) {
	signer := newTestSigner(t, "test-secret")
	signer.ttl = -time.Minute

	token, err := signer.Sign("session-abc")
	require.NoError(t, err)

	_, err = signer.Parse(token)
	assert.Error(t, err)
}

func TestCookieSigner_RejectsGarbage(t *testing.T) {
	signer := newTestSigner(t, "test-secret")

	_, err := signer.Parse("not-a-token")
	assert.Error(t, err)
}
