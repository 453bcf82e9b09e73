package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
)

type Service struct {
	Repo Repo
	// Cost is the bcrypt work factor; zero means bcrypt.DefaultCost.
	Cost int
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Register stores a new account with a salted one-way hash of rawPassword.
// A second registration for the same email fails with ErrDuplicateAccount.
func (s *Service) Register(ctx context.Context, name, email, rawPassword string) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return ErrDuplicateAccount
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := HashPassword(rawPassword, s.Cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("create user: %w", err)
	}
	metrics.IncUsersRegistered()
	return nil
}

// FindByEmail returns the account for email or ErrNotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(email) == "" {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByEmail(ctx, email)
}
