package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/csanchez-dev/myflix-api/internal/metrics"
	"github.com/csanchez-dev/myflix-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type registrar interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error)
}

type userUsecaser interface {
	UpdateProfile(ctx context.Context, identity auth.Identity, targetUsername string, input usecase.UpdateProfileInput) (*domain.User, error)
	AddFavorite(ctx context.Context, identity auth.Identity, targetUserID, movieID string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, identity auth.Identity, targetUserID, movieID string) (*domain.User, error)
	Deregister(ctx context.Context, identity auth.Identity, targetUserID string) error
}

type UserHandler struct {
	registrar registrar
	users     userUsecaser
	logger    *slog.Logger
}

func NewUserHandler(registrar registrar, users userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		registrar: registrar,
		users:     users,
		logger:    logger.With("component", "user_handler"),
	}
}

type registerRequest struct {
	Username string `json:"Username" binding:"required,min=5,alphanum"`
	Password string `json:"Password" binding:"required"`
	Email    string `json:"Email"    binding:"required,email"`
	Birthday string `json:"Birthday" binding:"omitempty"`
}

// POST /users
// 201 with the created record (digest excluded), 422 on bad input,
// 400 on a duplicate username.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"kind": kindValidation, "error": err.Error()})
		return
	}

	input := usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Birthday != "" {
		birthday, err := parseBirthday(req.Birthday)
		if err != nil {
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusUnprocessableEntity, gin.H{"kind": kindValidation, "error": err.Error()})
			return
		}
		input.Birthday = birthday
	}

	user, err := h.registrar.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"kind": kindConflict, "error": errUsernameTaken})
			return
		}
		h.logger.Error("register user", "error", err)
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, toUserResponse(user))
}

type updateUserRequest struct {
	Username *string `json:"Username" binding:"omitempty,min=5,alphanum"`
	Password *string `json:"Password" binding:"omitempty,min=1"`
	Email    *string `json:"Email"    binding:"omitempty,email"`
	Birthday *string `json:"Birthday" binding:"omitempty"`
}

// PUT /users/:username
// Requires ownership of the target account; 400 on a denied check, per
// the public API contract.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"kind": kindValidation, "error": err.Error()})
		return
	}

	input := usecase.UpdateProfileInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Birthday != nil {
		birthday, err := parseBirthday(*req.Birthday)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"kind": kindValidation, "error": err.Error()})
			return
		}
		input.Birthday = birthday
	}

	targetUsername := c.Param("username")
	user, err := h.users.UpdateProfile(c.Request.Context(), identityFromContext(c), targetUsername, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPermissionDenied):
			c.JSON(http.StatusBadRequest, gin.H{"kind": kindPermissionDenied, "error": errPermissionDenied})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"kind": kindNotFound, "error": errUserNotFound})
		case errors.Is(err, domain.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"kind": kindConflict, "error": errUsernameTaken})
		default:
			h.logger.Error("update user", "target", targetUsername, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// POST /users/:userId/favorites/:movieId
func (h *UserHandler) AddFavorite(c *gin.Context) {
	userID := c.Param("userId")
	movieID := c.Param("movieId")

	user, err := h.users.AddFavorite(c.Request.Context(), identityFromContext(c), userID, movieID)
	if err != nil {
		h.respondFavoriteError(c, "add favorite", err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// DELETE /users/:userId/favorites/:movieId
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	userID := c.Param("userId")
	movieID := c.Param("movieId")

	user, err := h.users.RemoveFavorite(c.Request.Context(), identityFromContext(c), userID, movieID)
	if err != nil {
		h.respondFavoriteError(c, "remove favorite", err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// DELETE /users/:userId
func (h *UserHandler) Deregister(c *gin.Context) {
	userID := c.Param("userId")

	err := h.users.Deregister(c.Request.Context(), identityFromContext(c), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPermissionDenied):
			c.JSON(http.StatusBadRequest, gin.H{"kind": kindPermissionDenied, "error": errPermissionDenied})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"kind": kindNotFound, "error": errUserNotFound})
		default:
			h.logger.Error("deregister user", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User was deleted."})
}

func (h *UserHandler) respondFavoriteError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusBadRequest, gin.H{"kind": kindPermissionDenied, "error": errPermissionDenied})
	case errors.Is(err, domain.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"kind": kindNotFound, "error": errMovieNotFound})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"kind": kindNotFound, "error": errUserNotFound})
	default:
		h.logger.Error(op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
	}
}
