package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, accessTTLMin, refreshTTLDays int) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-access-secret", "test-refresh-secret", accessTTLMin, refreshTTLDays)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("", "refresh", 15, 7)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewTokenService("access", "", 15, 7)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, 15, 7)

	tok, err := svc.IssueAccess(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	ident, err := svc.VerifyAccess(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), ident.UserID)
	assert.Equal(t, "admin", ident.Role)
}

func TestAccessToken_Expired(t *testing.T) {
	t.Parallel()

	// Negative TTL issues an already-expired token.
	svc := newTestTokenService(t, -1, 7)

	tok, err := svc.IssueAccess(42, "user")
	require.NoError(t, err)

	_, err = svc.VerifyAccess(tok.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, 15, 7)
	other, err := NewTokenService("different-secret", "test-refresh-secret", 15, 7)
	require.NoError(t, err)

	tok, err := svc.IssueAccess(1, "user")
	require.NoError(t, err)

	_, err = other.VerifyAccess(tok.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, 15, 7)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyAccess(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid, "raw=%q", raw)
	}
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, 15, 7)

	tok, err := svc.IssueRefresh(7)
	require.NoError(t, err)

	uid, err := svc.VerifyRefresh(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), uid)
}

func TestRefreshToken_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, 15, -1)

	tok, err := svc.IssueRefresh(7)
	require.NoError(t, err)

	_, err = svc.VerifyRefresh(tok.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

// The two token kinds use distinct secrets: a refresh token must not pass
// access verification and vice versa.
func TestTokenKinds_NotInterchangeable(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, 15, 7)

	refresh, err := svc.IssueRefresh(9)
	require.NoError(t, err)
	_, err = svc.VerifyAccess(refresh.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	access, err := svc.IssueAccess(9, "user")
	require.NoError(t, err)
	_, err = svc.VerifyRefresh(access.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
