package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so callers can branch with errors.Is without parsing messages.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)

// Error pairs a user-facing message with the HTTP status the API contract
// requires for it. Some failures (duplicate email, resend on a verified
// account) are reported with a 200 and the error flag set, so the status
// cannot be derived from the sentinel alone.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a status-coded error wrapping the given sentinel.
func NewError(status int, message string, sentinel error) *Error {
	return &Error{Status: status, Message: message, Err: sentinel}
}
