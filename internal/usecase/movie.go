package usecase

import (
	"context"
	"fmt"

	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/csanchez-dev/myflix-api/internal/repository"
)

type MovieUsecase struct {
	movies repository.MovieRepository
}

func NewMovieUsecase(movies repository.MovieRepository) *MovieUsecase {
	return &MovieUsecase{movies: movies}
}

func (u *MovieUsecase) List(ctx context.Context) ([]*domain.Movie, error) {
	movies, err := u.movies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (u *MovieUsecase) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return u.movies.FindByTitle(ctx, title)
}

func (u *MovieUsecase) ListGenres(ctx context.Context) ([]string, error) {
	genres, err := u.movies.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

// GetByGenre returns every movie in the named genre; an empty result is
// a not-found, matching the catalog's lookup semantics.
func (u *MovieUsecase) GetByGenre(ctx context.Context, name string) ([]*domain.Movie, error) {
	movies, err := u.movies.FindByGenre(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find by genre: %w", err)
	}
	if len(movies) == 0 {
		return nil, domain.ErrGenreNotFound
	}
	return movies, nil
}

func (u *MovieUsecase) GetByDirector(ctx context.Context, name string) ([]*domain.Movie, error) {
	movies, err := u.movies.FindByDirector(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find by director: %w", err)
	}
	if len(movies) == 0 {
		return nil, domain.ErrDirectorNotFound
	}
	return movies, nil
}
