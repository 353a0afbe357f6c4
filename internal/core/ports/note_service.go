package ports

import (
	"context"

	"github.com/notably/notes-api/internal/core/domain"
)

// CreateNoteInput carries the data for a note creation.
type CreateNoteInput struct {
	Username string
	Title    string
	Content  string
	// IdempotencyKey, when non-empty, makes the create replay-safe: a
	// repeated key returns the originally created note without a second
	// insert.
	IdempotencyKey string
}

// NoteService orchestrates ownership-scoped note operations. The username
// is resolved to a user id on every call so results always reflect current
// store state.
type NoteService interface {
	List(ctx context.Context, username string) ([]*domain.Note, error)
	Create(ctx context.Context, in CreateNoteInput) (*domain.Note, error)
	Update(ctx context.Context, username string, noteID int64, title, content string) error
	Delete(ctx context.Context, username string, noteID int64) error
}
