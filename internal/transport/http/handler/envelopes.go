package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dianotes-api/internal/domain"
)

// Envelope is the generic {error, message} response wrapper.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NoteEnvelope wraps responses carrying a single note.
type NoteEnvelope struct {
	Error   bool         `json:"error"`
	Note    *domain.Note `json:"note,omitempty"`
	Message string       `json:"message"`
}

// NotesEnvelope wraps responses carrying a list of notes.
type NotesEnvelope struct {
	Error   bool          `json:"error"`
	Notes   []domain.Note `json:"notes"`
	Message string        `json:"message"`
}

// UserInfo is the identity subset exposed to the client.
type UserInfo struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// UserEnvelope wraps the /get-user response.
type UserEnvelope struct {
	User    UserInfo `json:"user"`
	Message string   `json:"message"`
}

// AuthStatusEnvelope wraps the /auth-status response.
type AuthStatusEnvelope struct {
	Authenticated bool     `json:"authenticated"`
	User          UserInfo `json:"user"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Error: true, Message: msg})
}

// httpError converts a service error into the API's response shape. Errors
// without a status-coded wrapper are internal failures.
func httpError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		writeError(w, de.Status, de.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}
