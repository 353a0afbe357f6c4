package ports

import (
	"context"

	"github.com/notably/notes-api/internal/core/domain"
)

// ActivitySink accepts activity entries without blocking the caller.
// Implemented by the queue dispatcher.
type ActivitySink interface {
	Submit(entry domain.ActivityEntry)
}

// ActivityService persists a single activity entry.
type ActivityService interface {
	Record(ctx context.Context, entry domain.ActivityEntry) error
}

// ActivityRepository handles activity-log persistence.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
}
