package ports

import (
	"context"

	"github.com/notably/notes-api/internal/core/domain"
)

// UserRepository is the credential store. Append-only: users are never
// updated or deleted through this interface.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a new user and returns it with its assigned id.
	// A duplicate username yields domain.ErrUserExists; uniqueness is
	// enforced by the storage layer, not by a prior read.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
