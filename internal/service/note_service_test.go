package service

import (
	"context"
	"strconv"
	"testing"

	"vlearn-backend/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeNoteStore struct {
	notes map[string]*models.Note
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: make(map[string]*models.Note)}
}

func (s *fakeNoteStore) Create(ctx context.Context, note *models.Note) error {
	note.ID = "note" + strconv.Itoa(len(s.notes)+1)
	clone := *note
	s.notes[note.ID] = &clone
	return nil
}

func (s *fakeNoteStore) FindByUser(ctx context.Context, userID string) ([]models.Note, error) {
	var out []models.Note
	for _, n := range s.notes {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (s *fakeNoteStore) FindByID(ctx context.Context, id string) (*models.Note, error) {
	note, ok := s.notes[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *note
	return &clone, nil
}

func (s *fakeNoteStore) Update(ctx context.Context, id, title, content string) error {
	note, ok := s.notes[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	note.Title = title
	note.Content = content
	return nil
}

func (s *fakeNoteStore) Delete(ctx context.Context, id string) error {
	delete(s.notes, id)
	return nil
}

func TestNoteCRUD(t *testing.T) {
	svc := NewNoteService(newFakeNoteStore())
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, "u1", "Slices", "len vs cap")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if note.ID == "" || note.CreatedAt.IsZero() {
		t.Errorf("note = %+v", note)
	}

	if err := svc.UpdateNote(ctx, "u1", note.ID, "Slices", "append grows capacity"); err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}

	notes, err := svc.ListNotes(ctx, "u1")
	if err != nil || len(notes) != 1 {
		t.Fatalf("notes = %v, %v", notes, err)
	}
	if notes[0].Content != "append grows capacity" {
		t.Errorf("content = %q", notes[0].Content)
	}

	if err := svc.DeleteNote(ctx, "u1", note.ID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if notes, _ := svc.ListNotes(ctx, "u1"); len(notes) != 0 {
		t.Errorf("notes after delete = %v", notes)
	}
}

func TestNoteValidation(t *testing.T) {
	svc := NewNoteService(newFakeNoteStore())
	ctx := context.Background()

	if _, err := svc.CreateNote(ctx, "u1", "", "content"); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := svc.CreateNote(ctx, "u1", "title", "   "); err == nil {
		t.Error("expected error for blank content")
	}
}

func TestNoteOwnership(t *testing.T) {
	svc := NewNoteService(newFakeNoteStore())
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, "u1", "t", "c")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateNote(ctx, "intruder", note.ID, "x", "y"); err == nil {
		t.Error("expected ownership error on update")
	}
	if err := svc.DeleteNote(ctx, "intruder", note.ID); err == nil {
		t.Error("expected ownership error on delete")
	}
	if notes, _ := svc.ListNotes(ctx, "u1"); len(notes) != 1 {
		t.Error("note was removed by non-owner")
	}
}
