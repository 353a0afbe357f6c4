package ports

import (
	"context"

	"github.com/notably/notes-api/internal/core/domain"
)

// NoteRepository persists notes. Every read and mutation is scoped to an
// owner id; a note that exists but belongs to someone else behaves exactly
// like a note that does not exist (domain.ErrNoteNotFound).
type NoteRepository interface {
	// ListByOwner returns the owner's notes in natural storage order.
	// Callers must not rely on any particular ordering.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Note, error)
	FindByID(ctx context.Context, noteID, ownerID int64) (*domain.Note, error)
	// Create inserts a new note and returns it with its assigned id.
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	// Update sets title and content in a single conditional write keyed on
	// both note id and owner id.
	Update(ctx context.Context, noteID, ownerID int64, title, content string) error
	Delete(ctx context.Context, noteID, ownerID int64) error
}
