package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dianotes-api/internal/application/auth"
	"github.com/dianotes-api/internal/pkg/validate"
	"github.com/dianotes-api/internal/transport/http/middleware"
)

// AuthHandler handles the account lifecycle endpoints.
type AuthHandler struct {
	svc        auth.Service
	cookies    cookieWriter
	sessionTTL time.Duration
	otpTTL     time.Duration
}

func NewAuthHandler(svc auth.Service, secure bool, sessionTTL, otpTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		svc:        svc,
		cookies:    cookieWriter{secure: secure},
		sessionTTL: sessionTTL,
		otpTTL:     otpTTL,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Field-specific messages are part of the API contract.
	if req.UserName == "" {
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}
	if err := h.svc.Register(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Message: "Registration successful! Please check your email to verify your account."})
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.VerifyEmail(r.Context(), r.URL.Query().Get("token")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Message: "Email verified successfully!"})
}

func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.ResendVerification(r.Context(), req.Email); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Message: "The verification link has been sent to your email address."})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	h.cookies.set(w, sessionCookie, token, h.sessionTTL)
	writeJSON(w, http.StatusOK, Envelope{Message: "Login successful!"})
}

// Logout clears the session cookie unconditionally; it never validates it.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clear(w, sessionCookie)
	writeJSON(w, http.StatusOK, Envelope{Message: "Logged out successfully"})
}

func (h *AuthHandler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	writeJSON(w, http.StatusOK, AuthStatusEnvelope{
		Authenticated: true,
		User:          UserInfo{UserName: claims.UserName, Email: claims.Email},
	})
}

func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	u, err := h.svc.GetUser(r.Context(), claims.UserID)
	if err != nil {
		// A valid session whose account has vanished.
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, UserEnvelope{
		User:    UserInfo{UserName: u.UserName, Email: u.Email},
		Message: "",
	})
}

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.svc.RequestOTP(r.Context(), req.Email)
	if err != nil {
		// No cookie on failure.
		httpError(w, err)
		return
	}
	h.cookies.set(w, otpCookie, token, h.otpTTL)
	writeJSON(w, http.StatusOK, Envelope{Message: "OTP sent to your email."})
}

func (h *AuthHandler) ValidateOTP(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(otpCookie)
	if err != nil || cookie.Value == "" {
		writeError(w, http.StatusBadRequest, "The OTP got Expired. Click the Resend OTP.")
		return
	}
	var req auth.ValidateOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.ValidateOTP(cookie.Value, req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Message: "OTP validated successfully."})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(otpCookie)
	if err != nil || cookie.Value == "" {
		writeError(w, http.StatusBadRequest, "The OTP got Expired. Click the Resend OTP.")
		return
	}
	var req auth.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.ResetPassword(r.Context(), cookie.Value, req); err != nil {
		httpError(w, err)
		return
	}
	// The OTP cookie is cleared only after a successful reset.
	h.cookies.clear(w, otpCookie)
	writeJSON(w, http.StatusOK, Envelope{Message: "Password reset/change successful."})
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	var req auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "Old and new passwords are required.")
		return
	}
	if err := h.svc.ChangePassword(r.Context(), claims.UserID, req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Message: "Password changed successfully!"})
}
