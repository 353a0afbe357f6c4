package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/notably/notes-api/internal/core/domain"
	"github.com/notably/notes-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	activity ports.ActivitySink
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, activity ports.ActivitySink, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, activity: activity, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	// No pre-read for uniqueness: the store's unique index decides, so two
	// concurrent registrations of the same name cannot both succeed.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	s.submit(domain.ActivityEntry{Username: created.Username, Action: domain.ActionRegister, Timestamp: time.Now().UTC()})

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Indistinguishable from a wrong password.
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", domain.ErrInvalidCredentials
		}
		// The stored hash is malformed; this is a server-side integrity
		// problem, not a credentials one.
		return "", fmt.Errorf("verify password hash: %w", err)
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.submit(domain.ActivityEntry{Username: user.Username, Action: domain.ActionLogin, Timestamp: time.Now().UTC()})

	return token, nil
}

func (s *AuthService) submit(entry domain.ActivityEntry) {
	if s.activity != nil {
		s.activity.Submit(entry)
	}
}
