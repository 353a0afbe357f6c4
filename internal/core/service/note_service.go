package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/notably/notes-api/internal/core/domain"
	"github.com/notably/notes-api/internal/core/ports"
)

// IdempotencyStore abstracts the replay-detection store (Redis). A lookup
// hit maps an idempotency key back to the note id it originally created.
type IdempotencyStore interface {
	Lookup(ctx context.Context, ownerID int64, key string) (int64, bool, error)
	Remember(ctx context.Context, ownerID int64, key string, noteID int64) error
}

// NoteService orchestrates ownership-scoped note operations.
type NoteService struct {
	users    ports.UserRepository
	notes    ports.NoteRepository
	idem     IdempotencyStore
	activity ports.ActivitySink
	log      zerolog.Logger
}

func NewNoteService(users ports.UserRepository, notes ports.NoteRepository, idem IdempotencyStore, activity ports.ActivitySink, log zerolog.Logger) *NoteService {
	return &NoteService{users: users, notes: notes, idem: idem, activity: activity, log: log}
}

// owner resolves the caller's username to its user record. Resolved on
// every call so results always reflect the current credential store.
func (s *NoteService) owner(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *NoteService) List(ctx context.Context, username string) ([]*domain.Note, error) {
	user, err := s.owner(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.notes.ListByOwner(ctx, user.ID)
}

// Create inserts a note for the caller. When an idempotency key is present
// and already seen, the previously created note is returned without side
// effects; an unreachable idempotency store degrades to a plain create.
func (s *NoteService) Create(ctx context.Context, in ports.CreateNoteInput) (*domain.Note, error) {
	user, err := s.owner(ctx, in.Username)
	if err != nil {
		return nil, err
	}

	if s.idem != nil && in.IdempotencyKey != "" {
		noteID, hit, err := s.idem.Lookup(ctx, user.ID, in.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("idempotency lookup failed, creating anyway")
		} else if hit {
			existing, err := s.notes.FindByID(ctx, noteID, user.ID)
			if err == nil {
				s.log.Info().Int64("note_id", noteID).Str("username", in.Username).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	now := time.Now().UTC()
	note := &domain.Note{
		Title:     in.Title,
		Content:   in.Content,
		OwnerID:   user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.notes.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	if s.idem != nil && in.IdempotencyKey != "" {
		if err := s.idem.Remember(ctx, user.ID, in.IdempotencyKey, created.ID); err != nil {
			s.log.Warn().Err(err).Int64("note_id", created.ID).Msg("failed to record idempotency key")
		}
	}

	s.submit(domain.ActivityEntry{Username: user.Username, Action: domain.ActionNoteCreate, NoteID: created.ID, Timestamp: now})

	return created, nil
}

// Update mutates title and content of a note the caller owns. A note that
// is missing or owned by someone else yields domain.ErrNoteNotFound.
func (s *NoteService) Update(ctx context.Context, username string, noteID int64, title, content string) error {
	user, err := s.owner(ctx, username)
	if err != nil {
		return err
	}

	if err := s.notes.Update(ctx, noteID, user.ID, title, content); err != nil {
		return err
	}

	s.submit(domain.ActivityEntry{Username: user.Username, Action: domain.ActionNoteUpdate, NoteID: noteID, Timestamp: time.Now().UTC()})
	return nil
}

func (s *NoteService) Delete(ctx context.Context, username string, noteID int64) error {
	user, err := s.owner(ctx, username)
	if err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, noteID, user.ID); err != nil {
		return err
	}

	s.submit(domain.ActivityEntry{Username: user.Username, Action: domain.ActionNoteDelete, NoteID: noteID, Timestamp: time.Now().UTC()})
	return nil
}

func (s *NoteService) submit(entry domain.ActivityEntry) {
	if s.activity != nil {
		s.activity.Submit(entry)
	}
}
