package repository

import (
	"context"

	"github.com/csanchez-dev/myflix-api/internal/domain"
)

type MovieRepository interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)

	// ListGenres returns the distinct genre names across the catalog.
	ListGenres(ctx context.Context) ([]string, error)
	FindByGenre(ctx context.Context, name string) ([]*domain.Movie, error)
	FindByDirector(ctx context.Context, name string) ([]*domain.Movie, error)

	Count(ctx context.Context) (int64, error)
}
