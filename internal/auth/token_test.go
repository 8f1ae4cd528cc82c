package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

const testKey = "token-test-secret-at-least-32-chars!!"

func newService(ttl time.Duration) *auth.TokenService {
	return auth.NewTokenService([]byte(testKey), ttl)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := newService(time.Hour)

	signed, err := svc.Issue("user-1", "alice1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify freshly issued token: %v", err)
	}
	if id.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", id.UserID, "user-1")
	}
	if id.Username != "alice1" {
		t.Errorf("Username = %q, want %q", id.Username, "alice1")
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := newService(-time.Minute)

	signed, err := svc.Issue("user-1", "alice1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Verify(signed)
	if !errors.Is(err, auth.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	other := auth.NewTokenService([]byte("a-completely-different-32-char-key!"), time.Hour)
	signed, err := other.Issue("user-1", "alice1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = newService(time.Hour).Verify(signed)
	if !errors.Is(err, auth.ErrSignatureInvalid) {
		t.Errorf("err = %v, want ErrSignatureInvalid", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := newService(time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "not.a.jwt"} {
		if _, err := svc.Verify(raw); !errors.Is(err, auth.ErrTokenMalformed) {
			t.Errorf("Verify(%q) err = %v, want ErrTokenMalformed", raw, err)
		}
	}
}

// A token that claims alg=none must never pass, even with an otherwise
// well-formed payload.
func TestVerify_NoneAlgorithmRejected(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("build alg=none token: %v", err)
	}

	_, err = newService(time.Hour).Verify(unsigned)
	if err == nil {
		t.Fatal("alg=none token was accepted")
	}
	if !errors.Is(err, auth.ErrSignatureInvalid) {
		t.Errorf("err = %v, want ErrSignatureInvalid", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = newService(time.Hour).Verify(signed)
	if !errors.Is(err, auth.ErrTokenMalformed) {
		t.Errorf("err = %v, want ErrTokenMalformed", err)
	}
}
