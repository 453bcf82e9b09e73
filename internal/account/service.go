package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/users"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialStore is the subset of the users service the authenticator needs.
type CredentialStore interface {
	Register(ctx context.Context, name, email, rawPassword string) error
	FindByEmail(ctx context.Context, email string) (users.User, error)
}

// Service authenticates users against the credential store.
type Service struct {
	Users CredentialStore
}

func NewService(store CredentialStore) *Service {
	return &Service{Users: store}
}

// Register creates an account; users.ErrDuplicateAccount is returned unchanged.
func (s *Service) Register(ctx context.Context, name, email, rawPassword string) error {
	return s.Users.Register(ctx, name, email, rawPassword)
}

// Login checks the password against the stored hash and returns the identity to put in the session.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (auth.Identity, error) {
	if s == nil || s.Users == nil {
		return auth.Identity{}, errors.New("account service not configured")
	}
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			metrics.IncLoginsFailed()
			return auth.Identity{}, ErrInvalidCredentials
		}
		return auth.Identity{}, fmt.Errorf("lookup user: %w", err)
	}
	if !users.CheckPassword(strings.TrimSpace(user.PasswordHash), rawPassword) {
		metrics.IncLoginsFailed()
		return auth.Identity{}, ErrInvalidCredentials
	}
	return auth.Identity{UserID: user.ID, Name: user.Name}, nil
}
