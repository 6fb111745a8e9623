package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dianotes-api/internal/application/note"
	"github.com/dianotes-api/internal/domain"
	jwtinfra "github.com/dianotes-api/internal/infrastructure/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockNoteService struct{ mock.Mock }

func (m *mockNoteService) Add(ctx context.Context, userID string, req note.AddRequest) (*domain.Note, error) {
	args := m.Called(ctx, userID, req)
	if n, _ := args.Get(0).(*domain.Note); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteService) Edit(ctx context.Context, userID, noteID string, req note.EditRequest) (*domain.Note, error) {
	args := m.Called(ctx, userID, noteID, req)
	if n, _ := args.Get(0).(*domain.Note); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteService) GetAll(ctx context.Context, userID string) ([]domain.Note, error) {
	args := m.Called(ctx, userID)
	if ns, _ := args.Get(0).([]domain.Note); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteService) Delete(ctx context.Context, userID, noteID string) error {
	return m.Called(ctx, userID, noteID).Error(0)
}
func (m *mockNoteService) UpdatePinned(ctx context.Context, userID, noteID string, isPinned bool) (*domain.Note, error) {
	args := m.Called(ctx, userID, noteID, isPinned)
	if n, _ := args.Get(0).(*domain.Note); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteService) Search(ctx context.Context, userID, query string) ([]domain.Note, error) {
	args := m.Called(ctx, userID, query)
	if ns, _ := args.Get(0).([]domain.Note); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}

// noteRequest builds a request with session claims and an optional chi
// noteId route parameter.
func noteRequest(method, target, body, noteID string) *http.Request {
	var req *http.Request
	if body != "" {
		req = jsonRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req = withClaims(req, &jwtinfra.SessionClaims{UserID: "u1", UserName: "alice", Email: "alice@x.com"})
	if noteID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("noteId", noteID)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func TestAddNoteHandler_Success(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("Add", mock.Anything, "u1", note.AddRequest{Title: "t", Content: "c"}).
		Return(&domain.Note{NoteID: "n1", UserID: "u1", Title: "t", Content: "c", Tags: []string{}}, nil)

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.Add(rec, noteRequest(http.MethodPost, "/add-note", `{"title":"t","content":"c"}`, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Note added successfully"`)
	assert.Contains(t, rec.Body.String(), `"n1"`)
}

func TestAddNoteHandler_MissingTitle(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("Add", mock.Anything, "u1", mock.Anything).
		Return(nil, domain.NewError(http.StatusBadRequest, "Title is required", domain.ErrBadRequest))

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.Add(rec, noteRequest(http.MethodPost, "/add-note", `{"content":"c"}`, ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"Title is required"}`, rec.Body.String())
}

func TestEditNoteHandler_PassesRouteParam(t *testing.T) {
	svc := &mockNoteService{}
	title := "new"
	svc.On("Edit", mock.Anything, "u1", "n1", note.EditRequest{Title: &title}).
		Return(&domain.Note{NoteID: "n1", UserID: "u1", Title: "new"}, nil)

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.Edit(rec, noteRequest(http.MethodPut, "/edit-note/n1", `{"title":"new"}`, "n1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Note updated successfully"`)
}

func TestEditNoteHandler_NotFound(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("Edit", mock.Anything, "u1", "n9", mock.Anything).
		Return(nil, domain.NewError(http.StatusNotFound, "Note not found", domain.ErrNotFound))

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.Edit(rec, noteRequest(http.MethodPut, "/edit-note/n9", `{"title":"x"}`, "n9"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"Note not found"}`, rec.Body.String())
}

func TestGetAllNotesHandler(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("GetAll", mock.Anything, "u1").Return([]domain.Note{
		{NoteID: "n1", UserID: "u1", IsPinned: true},
		{NoteID: "n2", UserID: "u1"},
	}, nil)

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.GetAll(rec, noteRequest(http.MethodGet, "/get-all-notes", "", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"All Notes fetched successfully"`)
	assert.Contains(t, rec.Body.String(), `"error":false`)
}

func TestGetAllNotesHandler_NoNotesSerializesEmptyArray(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("GetAll", mock.Anything, "u1").Return([]domain.Note{}, nil)

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.GetAll(rec, noteRequest(http.MethodGet, "/get-all-notes", "", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notes":[]`)
	assert.NotContains(t, rec.Body.String(), `"notes":null`)
}

func TestDeleteNoteHandler(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("Delete", mock.Anything, "u1", "n1").Return(nil)

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.Delete(rec, noteRequest(http.MethodDelete, "/delete-note/n1", "", "n1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Note deleted successfully"`)
}

func TestUpdatePinnedHandler(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("UpdatePinned", mock.Anything, "u1", "n1", true).
		Return(&domain.Note{NoteID: "n1", UserID: "u1", IsPinned: true}, nil)

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.UpdatePinned(rec, noteRequest(http.MethodPut, "/update-note-pinned/n1", `{"isPinned":true}`, "n1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isPinned":true`)
}

func TestSearchNotesHandler(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("Search", mock.Anything, "u1", "milk").
		Return([]domain.Note{{NoteID: "n1", UserID: "u1", Title: "Groceries", Content: "milk"}}, nil)

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.Search(rec, noteRequest(http.MethodGet, "/search-notes?query=milk", "", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Notes matching the search query found successfully"`)
	assert.Contains(t, rec.Body.String(), `"error":false`)
}

func TestSearchNotesHandler_EmptyQuery(t *testing.T) {
	svc := &mockNoteService{}
	svc.On("Search", mock.Anything, "u1", "").
		Return(nil, domain.NewError(http.StatusBadRequest, "Search query is required", domain.ErrBadRequest))

	h := NewNoteHandler(svc)
	rec := httptest.NewRecorder()
	h.Search(rec, noteRequest(http.MethodGet, "/search-notes", "", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"Search query is required"}`, rec.Body.String())
}
