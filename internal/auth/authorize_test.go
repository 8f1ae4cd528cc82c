package auth_test

import (
	"errors"
	"testing"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/csanchez-dev/myflix-api/internal/domain"
)

func TestAuthorize_OwnerAllowed(t *testing.T) {
	id := auth.Identity{UserID: "user-a", Username: "alice1"}

	if err := auth.Authorize(id, "user-a"); err != nil {
		t.Errorf("owner was denied: %v", err)
	}
}

func TestAuthorize_NonOwnerDenied(t *testing.T) {
	id := auth.Identity{UserID: "user-a", Username: "alice1"}

	err := auth.Authorize(id, "user-b")
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestAuthorize_EmptyIdentityDenied(t *testing.T) {
	err := auth.Authorize(auth.Identity{}, "user-b")
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
}
