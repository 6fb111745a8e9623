package note

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dianotes-api/internal/domain"
	"github.com/dianotes-api/internal/pkg/id"
)

type AddRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type EditRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned"`
}

// NoteStore is the note persistence the service needs.
type NoteStore interface {
	Put(ctx context.Context, n *domain.Note) error
	Get(ctx context.Context, noteID string) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	Update(ctx context.Context, noteID string, updates map[string]interface{}) error
	Delete(ctx context.Context, noteID string) error
}

// Service provides owner-scoped note CRUD. A note belonging to another user
// is indistinguishable from a missing one.
type Service interface {
	Add(ctx context.Context, userID string, req AddRequest) (*domain.Note, error)
	Edit(ctx context.Context, userID, noteID string, req EditRequest) (*domain.Note, error)
	GetAll(ctx context.Context, userID string) ([]domain.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
	UpdatePinned(ctx context.Context, userID, noteID string, isPinned bool) (*domain.Note, error)
	Search(ctx context.Context, userID, query string) ([]domain.Note, error)
}

type service struct {
	notes NoteStore
}

func NewService(notes NoteStore) Service {
	return &service{notes: notes}
}

func (s *service) Add(ctx context.Context, userID string, req AddRequest) (*domain.Note, error) {
	if req.Title == "" {
		return nil, domain.NewError(http.StatusBadRequest, "Title is required", domain.ErrBadRequest)
	}
	if req.Content == "" {
		return nil, domain.NewError(http.StatusBadRequest, "Content is required", domain.ErrBadRequest)
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC()
	n := &domain.Note{
		NoteID:    id.New(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      tags,
		IsPinned:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notes.Put(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) Edit(ctx context.Context, userID, noteID string, req EditRequest) (*domain.Note, error) {
	if req.Title == nil && req.Content == nil && req.Tags == nil {
		return nil, domain.NewError(http.StatusBadRequest, "No changes provided", domain.ErrBadRequest)
	}
	n, err := s.getOwned(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		n.Title = *req.Title
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		n.Content = *req.Content
		updates["content"] = *req.Content
	}
	if req.Tags != nil {
		n.Tags = req.Tags
		updates["tags"] = req.Tags
	}
	if req.IsPinned != nil {
		n.IsPinned = *req.IsPinned
		updates["is_pinned"] = *req.IsPinned
	}
	if err := s.notes.Update(ctx, n.NoteID, updates); err != nil {
		return nil, err
	}
	n.UpdatedAt = time.Now().UTC()
	return n, nil
}

// GetAll returns the owner's notes, pinned first, then newest first.
func (s *service) GetAll(ctx context.Context, userID string) ([]domain.Note, error) {
	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].IsPinned && !notes[j].IsPinned
	})
	return notes, nil
}

func (s *service) Delete(ctx context.Context, userID, noteID string) error {
	n, err := s.getOwned(ctx, userID, noteID)
	if err != nil {
		return err
	}
	return s.notes.Delete(ctx, n.NoteID)
}

func (s *service) UpdatePinned(ctx context.Context, userID, noteID string, isPinned bool) (*domain.Note, error) {
	n, err := s.getOwned(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if err := s.notes.Update(ctx, n.NoteID, map[string]interface{}{"is_pinned": isPinned}); err != nil {
		return nil, err
	}
	n.IsPinned = isPinned
	n.UpdatedAt = time.Now().UTC()
	return n, nil
}

// Search does a case-insensitive substring match over title and content of
// the owner's notes.
func (s *service) Search(ctx context.Context, userID, query string) ([]domain.Note, error) {
	if query == "" {
		return nil, domain.NewError(http.StatusBadRequest, "Search query is required", domain.ErrBadRequest)
	}
	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func (s *service) getOwned(ctx context.Context, userID, noteID string) (*domain.Note, error) {
	n, err := s.notes.Get(ctx, noteID)
	if err != nil || n.UserID != userID {
		return nil, domain.NewError(http.StatusNotFound, "Note not found", domain.ErrNotFound)
	}
	return n, nil
}
