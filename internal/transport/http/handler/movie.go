package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type catalog interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	ListGenres(ctx context.Context) ([]string, error)
	GetByGenre(ctx context.Context, name string) ([]*domain.Movie, error)
	GetByDirector(ctx context.Context, name string) ([]*domain.Movie, error)
}

type MovieHandler struct {
	movies catalog
	logger *slog.Logger
}

func NewMovieHandler(movies catalog, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{movies: movies, logger: logger.With("component", "movie_handler")}
}

// GET /movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movies.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list movies", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toMovieResponses(movies))
}

// GET /movies/:title
func (h *MovieHandler) GetByTitle(c *gin.Context) {
	title := c.Param("title")

	movie, err := h.movies.GetByTitle(c.Request.Context(), title)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"kind": kindNotFound, "error": errMovieNotFound})
			return
		}
		h.logger.Error("get movie", "title", title, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toMovieResponse(movie))
}

// GET /genre
func (h *MovieHandler) ListGenres(c *gin.Context) {
	genres, err := h.movies.ListGenres(c.Request.Context())
	if err != nil {
		h.logger.Error("list genres", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		return
	}
	if genres == nil {
		genres = []string{}
	}
	c.JSON(http.StatusOK, genres)
}

// GET /genre/:name
func (h *MovieHandler) GetByGenre(c *gin.Context) {
	name := c.Param("name")

	movies, err := h.movies.GetByGenre(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrGenreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"kind": kindNotFound, "error": errGenreNotFound})
			return
		}
		h.logger.Error("get genre", "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toMovieResponses(movies))
}

// GET /director/:name
func (h *MovieHandler) GetByDirector(c *gin.Context) {
	name := c.Param("name")

	movies, err := h.movies.GetByDirector(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrDirectorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"kind": kindNotFound, "error": errDirectorNotFound})
			return
		}
		h.logger.Error("get director", "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"kind": kindInternal, "error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toMovieResponses(movies))
}
