package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dianotes-api/internal/application/note"
	"github.com/dianotes-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// NoteHandler handles the note CRUD endpoints. All routes sit behind the
// session gate, so claims are always present.
type NoteHandler struct {
	svc note.Service
}

func NewNoteHandler(svc note.Service) *NoteHandler { return &NoteHandler{svc: svc} }

func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	var req note.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	n, err := h.svc.Add(r.Context(), claims.UserID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NoteEnvelope{Note: n, Message: "Note added successfully"})
}

func (h *NoteHandler) Edit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	var req note.EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	n, err := h.svc.Edit(r.Context(), claims.UserID, chi.URLParam(r, "noteId"), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NoteEnvelope{Note: n, Message: "Note updated successfully"})
}

func (h *NoteHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	notes, err := h.svc.GetAll(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NotesEnvelope{Notes: notes, Message: "All Notes fetched successfully"})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	if err := h.svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "noteId")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Message: "Note deleted successfully"})
}

func (h *NoteHandler) UpdatePinned(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	var req struct {
		IsPinned bool `json:"isPinned"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	n, err := h.svc.UpdatePinned(r.Context(), claims.UserID, chi.URLParam(r, "noteId"), req.IsPinned)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NoteEnvelope{Note: n, Message: "Note updated successfully"})
}

func (h *NoteHandler) Search(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	notes, err := h.svc.Search(r.Context(), claims.UserID, r.URL.Query().Get("query"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NotesEnvelope{Notes: notes, Message: "Notes matching the search query found successfully"})
}
