package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	Birthday     *time.Time

	// Favorites holds the IDs of favorited movies. Adding the same
	// movie twice is a no-op (set semantics).
	Favorites []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate carries a partial profile update. Nil fields are left
// untouched; PasswordHash must already be a digest, never a plaintext.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Email        *string
	Birthday     *time.Time
}
