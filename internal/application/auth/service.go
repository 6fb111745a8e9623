package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dianotes-api/internal/domain"
	jwtinfra "github.com/dianotes-api/internal/infrastructure/jwt"
	"github.com/dianotes-api/internal/pkg/id"
	"github.com/dianotes-api/internal/pkg/otp"
	"github.com/dianotes-api/internal/pkg/password"
)

type RegisterRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ValidateOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UserStore is the account persistence the service needs.
type UserStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

// Mailer delivers plaintext messages to an address.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// TokenProvider signs and verifies the three token classes.
type TokenProvider interface {
	SignSession(u *domain.User) (string, error)
	SignEmail(email string) (string, error)
	VerifyEmail(tokenStr string) (*jwtinfra.EmailClaims, error)
	SignOTP(email, code string) (string, error)
	VerifyOTP(tokenStr string) (*jwtinfra.OTPClaims, error)
}

// Service drives the account lifecycle: registration, email verification,
// login, the OTP password-reset branch, and in-session password change.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	VerifyEmail(ctx context.Context, tokenStr string) error
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, req LoginRequest) (sessionToken string, err error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	RequestOTP(ctx context.Context, email string) (otpToken string, err error)
	ValidateOTP(otpToken string, req ValidateOTPRequest) error
	ResetPassword(ctx context.Context, otpToken string, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

// ServiceDeps holds the collaborators for NewService.
type ServiceDeps struct {
	Users       UserStore
	Mailer      Mailer
	Tokens      TokenProvider
	FrontendURL string
}

type service struct {
	users       UserStore
	mailer      Mailer
	tokens      TokenProvider
	frontendURL string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:       deps.Users,
		mailer:      deps.Mailer,
		tokens:      deps.Tokens,
		frontendURL: deps.FrontendURL,
	}
}

// Register persists a new unverified account and dispatches the verification
// link. It does not log the user in. A mail failure after the save surfaces
// as an internal error; the account stays.
func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return domain.NewError(http.StatusOK, "User with this email already exists", domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: hash,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Put(ctx, u); err != nil {
		return err
	}
	return s.sendVerificationLink(u.Email)
}

func (s *service) VerifyEmail(ctx context.Context, tokenStr string) error {
	claims, err := s.tokens.VerifyEmail(tokenStr)
	if err != nil {
		return domain.NewError(http.StatusBadRequest, "Invalid or expired token.", err)
	}
	u, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		return domain.NewError(http.StatusBadRequest, "User not found.", domain.ErrNotFound)
	}
	// Redeeming twice succeeds: the write is idempotent and there is no
	// "already verified" rejection on this path.
	return s.users.Update(ctx, u.UserID, map[string]interface{}{"verified": true})
}

func (s *service) ResendVerification(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.NewError(http.StatusOK, "User not found", domain.ErrNotFound)
	}
	if u.Verified {
		return domain.NewError(http.StatusOK, "Email is already verified", domain.ErrConflict)
	}
	return s.sendVerificationLink(u.Email)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", domain.NewError(http.StatusBadRequest, "User not found", domain.ErrNotFound)
	}
	if !password.Verify(req.Password, u.PasswordHash) {
		return "", domain.NewError(http.StatusBadRequest, "Incorrect password", domain.ErrUnauthorized)
	}
	// Credentials matched but the address was never confirmed.
	if !u.Verified {
		return "", domain.NewError(http.StatusBadRequest, "Please verify your email first", domain.ErrForbidden)
	}
	return s.tokens.SignSession(u)
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.Get(ctx, userID)
}

// RequestOTP generates a 6-digit code, mails it, and returns the short-lived
// signed token the handler sets as the otpToken cookie. The code lives only
// inside the token; nothing is stored server-side.
func (s *service) RequestOTP(ctx context.Context, email string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", domain.NewError(http.StatusNotFound, "User not found.", domain.ErrNotFound)
	}
	code, err := otp.Generate()
	if err != nil {
		return "", err
	}
	tokenStr, err := s.tokens.SignOTP(u.Email, code)
	if err != nil {
		return "", err
	}
	body := fmt.Sprintf("Your OTP is %s. It will expire in 2 minutes.", code)
	if err := s.mailer.SendEmail(u.Email, "Dianotes OTP for Password Reset", body); err != nil {
		return "", err
	}
	return tokenStr, nil
}

// ValidateOTP checks the submitted email+code against the decoded token.
// The token is read, not consumed: a later ResetPassword re-verifies it.
func (s *service) ValidateOTP(otpToken string, req ValidateOTPRequest) error {
	claims, err := s.tokens.VerifyOTP(otpToken)
	if err != nil {
		if errors.Is(err, jwtinfra.ErrTokenExpired) {
			return domain.NewError(http.StatusBadRequest, "OTP has expired.", err)
		}
		return domain.NewError(http.StatusBadRequest, "Invalid or expired OTP.", err)
	}
	if claims.Email != req.Email || claims.Code != req.OTP {
		return domain.NewError(http.StatusBadRequest, "Invalid or expired OTP.", domain.ErrUnauthorized)
	}
	return nil
}

// ResetPassword trusts possession of a valid OTP token whose email claim
// matches the request; it does not require a prior ValidateOTP call and does
// not re-check the code itself.
func (s *service) ResetPassword(ctx context.Context, otpToken string, req ResetPasswordRequest) error {
	claims, err := s.tokens.VerifyOTP(otpToken)
	if err != nil {
		if errors.Is(err, jwtinfra.ErrTokenExpired) {
			return domain.NewError(http.StatusBadRequest, "Token has expired.", err)
		}
		return domain.NewError(http.StatusBadRequest, "Invalid token.", err)
	}
	if claims.Email != req.Email {
		return domain.NewError(http.StatusBadRequest, "Invalid token.", domain.ErrForbidden)
	}
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return domain.NewError(http.StatusNotFound, "User not found.", domain.ErrNotFound)
	}
	hash, err := password.Hash(req.Password)
	if err != nil {
		return err
	}
	return s.users.Update(ctx, u.UserID, map[string]interface{}{"password_hash": hash})
}

// ChangePassword mutates the password of a logged-in account. The session
// token the caller holds stays valid for its full lifetime; there is no
// revocation list.
func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return domain.NewError(http.StatusNotFound, "User not found.", domain.ErrNotFound)
	}
	if !password.Verify(req.OldPassword, u.PasswordHash) {
		return domain.NewError(http.StatusBadRequest, "Old password is incorrect.", domain.ErrUnauthorized)
	}
	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	return s.users.Update(ctx, u.UserID, map[string]interface{}{"password_hash": hash})
}

func (s *service) sendVerificationLink(email string) error {
	tokenStr, err := s.tokens.SignEmail(email)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, tokenStr)
	body := fmt.Sprintf("Please verify your email by clicking the following link: %s \n\nThis link will expire after 5 minutes.", link)
	return s.mailer.SendEmail(email, "Dianotes Email Verification", body)
}
