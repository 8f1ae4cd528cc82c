package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/csanchez-dev/myflix-api/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

func newUserUsecase(repo *fakeUserRepo) *usecase.UserUsecase {
	return usecase.NewUserUsecase(repo, auth.NewPasswordHasher(bcrypt.MinCost))
}

var (
	alice = auth.Identity{UserID: "user-a", Username: "alice1"}
	bob   = auth.Identity{UserID: "user-b", Username: "bob1"}
)

func aliceRecord() *domain.User {
	return &domain.User{ID: "user-a", Username: "alice1", Email: "a@b.com"}
}

// ---- UpdateProfile ----

func TestUpdateProfile_NonOwner_Denied(t *testing.T) {
	updateCalled := false
	repo := &fakeUserRepo{
		findByUsername: func(_ context.Context, _ string) (*domain.User, error) {
			return aliceRecord(), nil
		},
		update: func(_ context.Context, _ string, _ domain.UserUpdate) (*domain.User, error) {
			updateCalled = true
			return nil, nil
		},
	}

	_, err := newUserUsecase(repo).UpdateProfile(context.Background(), bob, "alice1", usecase.UpdateProfileInput{})
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
	if updateCalled {
		t.Error("update reached the store despite the denied check")
	}
}

func TestUpdateProfile_Owner_AppliesChanges(t *testing.T) {
	var captured domain.UserUpdate
	repo := &fakeUserRepo{
		findByUsername: func(_ context.Context, _ string) (*domain.User, error) {
			return aliceRecord(), nil
		},
		update: func(_ context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
			if id != "user-a" {
				t.Errorf("update id = %q, want user-a", id)
			}
			captured = upd
			u := aliceRecord()
			u.Email = *upd.Email
			return u, nil
		},
	}

	email := "new@b.com"
	updated, err := newUserUsecase(repo).UpdateProfile(context.Background(), alice, "alice1",
		usecase.UpdateProfileInput{Email: &email})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "new@b.com" {
		t.Errorf("email = %q, want new@b.com", updated.Email)
	}
	if captured.PasswordHash != nil {
		t.Error("password hash changed without a password in the input")
	}
}

func TestUpdateProfile_NewPassword_IsHashed(t *testing.T) {
	var captured domain.UserUpdate
	repo := &fakeUserRepo{
		findByUsername: func(_ context.Context, _ string) (*domain.User, error) {
			return aliceRecord(), nil
		},
		update: func(_ context.Context, _ string, upd domain.UserUpdate) (*domain.User, error) {
			captured = upd
			return aliceRecord(), nil
		},
	}

	pw := "brand-new-pw"
	_, err := newUserUsecase(repo).UpdateProfile(context.Background(), alice, "alice1",
		usecase.UpdateProfileInput{Password: &pw})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if captured.PasswordHash == nil {
		t.Fatal("no password hash in the update")
	}
	if *captured.PasswordHash == pw {
		t.Error("plaintext password reached the store")
	}
	if !auth.NewPasswordHasher(bcrypt.MinCost).Verify(pw, *captured.PasswordHash) {
		t.Error("stored digest does not verify against the new password")
	}
}

func TestUpdateProfile_TargetMissing_ReturnsNotFound(t *testing.T) {
	repo := &fakeUserRepo{
		findByUsername: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	_, err := newUserUsecase(repo).UpdateProfile(context.Background(), alice, "ghost", usecase.UpdateProfileInput{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

// ---- favorites ----

func TestAddFavorite_NonOwner_Denied(t *testing.T) {
	repo := &fakeUserRepo{
		addFavorite: func(_ context.Context, _, _ string) (*domain.User, error) {
			t.Error("store reached despite the denied check")
			return nil, nil
		},
	}

	_, err := newUserUsecase(repo).AddFavorite(context.Background(), bob, "user-a", "movie-1")
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestAddFavorite_Owner_ReturnsUpdatedRecord(t *testing.T) {
	repo := &fakeUserRepo{
		addFavorite: func(_ context.Context, userID, movieID string) (*domain.User, error) {
			u := aliceRecord()
			u.Favorites = []string{movieID}
			return u, nil
		},
	}

	updated, err := newUserUsecase(repo).AddFavorite(context.Background(), alice, "user-a", "movie-1")
	if err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if len(updated.Favorites) != 1 || updated.Favorites[0] != "movie-1" {
		t.Errorf("favorites = %v, want [movie-1]", updated.Favorites)
	}
}

func TestRemoveFavorite_NonOwner_Denied(t *testing.T) {
	repo := &fakeUserRepo{
		removeFavorite: func(_ context.Context, _, _ string) (*domain.User, error) {
			t.Error("store reached despite the denied check")
			return nil, nil
		},
	}

	_, err := newUserUsecase(repo).RemoveFavorite(context.Background(), bob, "user-a", "movie-1")
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
}

// ---- Deregister ----

func TestDeregister_NonOwner_Denied(t *testing.T) {
	repo := &fakeUserRepo{
		delete: func(_ context.Context, _ string) error {
			t.Error("delete reached the store despite the denied check")
			return nil
		},
	}

	err := newUserUsecase(repo).Deregister(context.Background(), bob, "user-a")
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestDeregister_Owner_Deletes(t *testing.T) {
	deleted := ""
	repo := &fakeUserRepo{
		delete: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	if err := newUserUsecase(repo).Deregister(context.Background(), alice, "user-a"); err != nil {
		t.Fatalf("deregister: %v", err)
	}
	if deleted != "user-a" {
		t.Errorf("deleted id = %q, want user-a", deleted)
	}
}
