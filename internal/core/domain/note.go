package domain

import (
	"errors"
	"time"
)

// ErrNoteNotFound covers both a missing note and a note owned by another
// user. The two cases are deliberately indistinguishable to callers.
var ErrNoteNotFound = errors.New("note not found")

// Note is a single note owned by exactly one user. Ownership is set at
// creation and never changes.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
