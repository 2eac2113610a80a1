package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vlearn-backend/internal/models"
)

type NoteStore interface {
	Create(ctx context.Context, note *models.Note) error
	FindByUser(ctx context.Context, userID string) ([]models.Note, error)
	FindByID(ctx context.Context, id string) (*models.Note, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
}

type NoteService struct {
	notes NoteStore
}

func NewNoteService(notes NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

// CreateNote rejects empty fields before touching the store.
func (s *NoteService) CreateNote(ctx context.Context, userID, title, content string) (*models.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("note title and content are required")
	}

	now := time.Now()
	note := &models.Note{
		Title:     title,
		Content:   content,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return note, nil
}

func (s *NoteService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	return s.notes.FindByUser(ctx, userID)
}

func (s *NoteService) UpdateNote(ctx context.Context, userID, noteID, title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return fmt.Errorf("note title and content are required")
	}
	if _, err := s.ownedNote(ctx, userID, noteID); err != nil {
		return err
	}
	return s.notes.Update(ctx, noteID, title, content)
}

func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if _, err := s.ownedNote(ctx, userID, noteID); err != nil {
		return err
	}
	return s.notes.Delete(ctx, noteID)
}

func (s *NoteService) ownedNote(ctx context.Context, userID, noteID string) (*models.Note, error) {
	note, err := s.notes.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, fmt.Errorf("note %s does not belong to user", noteID)
	}
	return note, nil
}
