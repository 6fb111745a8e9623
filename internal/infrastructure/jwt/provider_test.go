package jwtinfra

import (
	"testing"
	"time"

	"github.com/dianotes-api/internal/config"
	"github.com/dianotes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret: "access-secret",
		EmailTokenSecret:  "email-secret",
		OTPTokenSecret:    "otp-secret",
		SessionTokenTTL:   3 * 24 * time.Hour,
		EmailTokenTTL:     5 * time.Minute,
		OTPTokenTTL:       2 * time.Minute,
	}
}

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider(testConfig())
	require.NoError(t, err)
	return p
}

func TestNewProvider_MissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.OTPTokenSecret = ""
	_, err := NewProvider(cfg)
	assert.Error(t, err)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	p := newTestProvider(t)
	u := &domain.User{UserID: "u1", UserName: "alice", Email: "alice@x.com"}

	tok, err := p.SignSession(u)
	require.NoError(t, err)

	claims, err := p.VerifySession(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice", claims.UserName)
	assert.Equal(t, "alice@x.com", claims.Email)
}

func TestEmailToken_RoundTrip(t *testing.T) {
	p := newTestProvider(t)

	tok, err := p.SignEmail("alice@x.com")
	require.NoError(t, err)

	claims, err := p.VerifyEmail(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Email)
}

func TestOTPToken_RoundTrip(t *testing.T) {
	p := newTestProvider(t)

	tok, err := p.SignOTP("alice@x.com", "123456")
	require.NoError(t, err)

	claims, err := p.VerifyOTP(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "123456", claims.Code)
}

func TestVerify_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.EmailTokenTTL = -time.Minute // already past its expiry when signed
	p, err := NewProvider(cfg)
	require.NoError(t, err)

	tok, err := p.SignEmail("alice@x.com")
	require.NoError(t, err)

	_, err = p.VerifyEmail(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_GarbageToken(t *testing.T) {
	p := newTestProvider(t)
	_, err := p.VerifySession("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// A token of one class must not verify under another class's secret.
func TestVerify_SecretsAreIndependent(t *testing.T) {
	p := newTestProvider(t)

	emailTok, err := p.SignEmail("alice@x.com")
	require.NoError(t, err)
	_, err = p.VerifyOTP(emailTok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	u := &domain.User{UserID: "u1", UserName: "alice", Email: "alice@x.com"}
	sessionTok, err := p.SignSession(u)
	require.NoError(t, err)
	_, err = p.VerifyEmail(sessionTok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
