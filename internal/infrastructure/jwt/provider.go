package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/dianotes-api/internal/config"
	"github.com/dianotes-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Verification failures collapse into exactly two cases: past the embedded
// expiry, or anything else (bad signature, malformed token, wrong algorithm).
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// SessionClaims is the payload of the session token: a snapshot of the
// account identity taken at login. Validity is signature + expiry only,
// no store lookup — a later password change does not revoke it.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// EmailClaims is the payload of the email-verification token.
type EmailClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// OTPClaims binds a one-time code to the email it was issued for.
type OTPClaims struct {
	Email string `json:"email"`
	Code  string `json:"otp"`
	jwt.RegisteredClaims
}

// Provider signs and verifies the three token classes with independent
// HS256 secrets and lifetimes.
type Provider struct {
	accessSecret []byte
	emailSecret  []byte
	otpSecret    []byte

	sessionTTL time.Duration
	emailTTL   time.Duration
	otpTTL     time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.AccessTokenSecret == "" || cfg.EmailTokenSecret == "" || cfg.OTPTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET, EMAIL_SECRET and OTP_SECRET must all be set")
	}
	return &Provider{
		accessSecret: []byte(cfg.AccessTokenSecret),
		emailSecret:  []byte(cfg.EmailTokenSecret),
		otpSecret:    []byte(cfg.OTPTokenSecret),
		sessionTTL:   cfg.SessionTokenTTL,
		emailTTL:     cfg.EmailTokenTTL,
		otpTTL:       cfg.OTPTokenTTL,
	}, nil
}

func (p *Provider) SignSession(u *domain.User) (string, error) {
	claims := SessionClaims{
		UserID:           u.UserID,
		UserName:         u.UserName,
		Email:            u.Email,
		RegisteredClaims: registered(p.sessionTTL),
	}
	return sign(claims, p.accessSecret)
}

func (p *Provider) VerifySession(tokenStr string) (*SessionClaims, error) {
	var claims SessionClaims
	if err := verify(tokenStr, p.accessSecret, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

func (p *Provider) SignEmail(email string) (string, error) {
	claims := EmailClaims{
		Email:            email,
		RegisteredClaims: registered(p.emailTTL),
	}
	return sign(claims, p.emailSecret)
}

func (p *Provider) VerifyEmail(tokenStr string) (*EmailClaims, error) {
	var claims EmailClaims
	if err := verify(tokenStr, p.emailSecret, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

func (p *Provider) SignOTP(email, code string) (string, error) {
	claims := OTPClaims{
		Email:            email,
		Code:             code,
		RegisteredClaims: registered(p.otpTTL),
	}
	return sign(claims, p.otpSecret)
}

func (p *Provider) VerifyOTP(tokenStr string) (*OTPClaims, error) {
	var claims OTPClaims
	if err := verify(tokenStr, p.otpSecret, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// OTPTTL is the cookie max-age companion of the OTP token expiry.
func (p *Provider) OTPTTL() time.Duration { return p.otpTTL }

// SessionTTL is the cookie max-age companion of the session token expiry.
func (p *Provider) SessionTTL() time.Duration { return p.sessionTTL }

func registered(ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func sign(claims jwt.Claims, secret []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func verify(tokenStr string, secret []byte, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
