package repository

import (
	"context"

	"github.com/csanchez-dev/myflix-api/internal/domain"
)

type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUsernameTaken when
	// the username unique index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update applies the non-nil fields of upd and returns the updated
	// record.
	Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)

	Delete(ctx context.Context, id string) error

	// AddFavorite / RemoveFavorite are idempotent set operations; both
	// return the updated record.
	AddFavorite(ctx context.Context, userID, movieID string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, userID, movieID string) (*domain.User, error)

	Count(ctx context.Context) (int64, error)
}
