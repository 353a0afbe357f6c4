package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/notably/notes-api/internal/core/domain"
	"github.com/notably/notes-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists entries to
// the activity log.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) Record(ctx context.Context, entry domain.ActivityEntry) error {
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("username", entry.Username).
		Str("action", entry.Action).
		Int64("note_id", entry.NoteID).
		Msg("activity recorded")

	return nil
}
