package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/csanchez-dev/myflix-api/internal/repository"
)

type UserUsecase struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

func NewUserUsecase(users repository.UserRepository, hasher *auth.PasswordHasher) *UserUsecase {
	return &UserUsecase{users: users, hasher: hasher}
}

type UpdateProfileInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
}

// UpdateProfile resolves the target by username, enforces ownership,
// and applies the partial update. A new password is hashed before it
// ever reaches the store.
func (u *UserUsecase) UpdateProfile(ctx context.Context, identity auth.Identity, targetUsername string, input UpdateProfileInput) (*domain.User, error) {
	target, err := u.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}

	if err := auth.Authorize(identity, target.ID); err != nil {
		return nil, err
	}

	upd := domain.UserUpdate{
		Username: input.Username,
		Email:    input.Email,
		Birthday: input.Birthday,
	}
	if input.Password != nil {
		digest, err := u.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		upd.PasswordHash = &digest
	}

	updated, err := u.users.Update(ctx, target.ID, upd)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *UserUsecase) AddFavorite(ctx context.Context, identity auth.Identity, targetUserID, movieID string) (*domain.User, error) {
	if err := auth.Authorize(identity, targetUserID); err != nil {
		return nil, err
	}
	return u.users.AddFavorite(ctx, targetUserID, movieID)
}

func (u *UserUsecase) RemoveFavorite(ctx context.Context, identity auth.Identity, targetUserID, movieID string) (*domain.User, error) {
	if err := auth.Authorize(identity, targetUserID); err != nil {
		return nil, err
	}
	return u.users.RemoveFavorite(ctx, targetUserID, movieID)
}

func (u *UserUsecase) Deregister(ctx context.Context, identity auth.Identity, targetUserID string) error {
	if err := auth.Authorize(identity, targetUserID); err != nil {
		return err
	}
	return u.users.Delete(ctx, targetUserID)
}
