package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/csanchez-dev/myflix-api/internal/repository"
	"github.com/google/uuid"
)

type AuthUsecase struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewAuthUsecase(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthUsecase {
	return &AuthUsecase{users: users, hasher: hasher, tokens: tokens}
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// Register hashes the password and persists the new credential. Shape
// validation (username length/charset, email format) happens at the
// transport layer; uniqueness is checked here and enforced again by the
// store's unique index under concurrent registration.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if _, err := u.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	digest, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := u.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: digest,
		Email:        input.Email,
		Birthday:     input.Birthday,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login returns a signed bearer token for valid credentials. Unknown
// usernames and wrong passwords yield the same ErrInvalidCredentials so
// responses cannot be used to enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !u.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
