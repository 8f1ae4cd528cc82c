package auth

import (
	"crypto/subtle"

	"github.com/csanchez-dev/myflix-api/internal/domain"
)

// Authorize allows a mutation only when the authenticated identity owns
// the target resource. It runs before any write to a user record.
func Authorize(identity Identity, ownerID string) error {
	if subtle.ConstantTimeCompare([]byte(identity.UserID), []byte(ownerID)) == 1 {
		return nil
	}
	return domain.ErrPermissionDenied
}
