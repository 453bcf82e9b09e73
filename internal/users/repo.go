package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrDuplicateAccount = errors.New("email already registered")
)

// Repo persists user accounts. Create must reject a duplicate email with ErrDuplicateAccount.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	Count(ctx context.Context) (int, error)
}
