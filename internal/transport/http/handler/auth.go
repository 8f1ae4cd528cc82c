package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/csanchez-dev/myflix-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// loginer is the subset of AuthUsecase the handler needs. Defined here
// (point of use) so tests can inject a fake.
type loginer interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

type AuthHandler struct {
	auth   loginer
	logger *slog.Logger
}

func NewAuthHandler(auth loginer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger.With("component", "auth_handler")}
}

type loginRequest struct {
	Username string `json:"Username" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

// POST /login
// Returns {"token": ..., "user": ...} on success. Unknown usernames and
// wrong passwords produce an identical 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"kind": kindValidation, "error": err.Error()})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"kind": kindInvalidCredentials, "error": errInvalidCredentials})
			return
		}
		h.logger.Error("login", "error", err)
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}
