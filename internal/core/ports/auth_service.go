package ports

import (
	"context"

	"github.com/notably/notes-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token. Unknown
	// username and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
