package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/csanchez-dev/myflix-api/internal/usecase"
)

type fakeMovieRepo struct {
	list           func(ctx context.Context) ([]*domain.Movie, error)
	findByTitle    func(ctx context.Context, title string) (*domain.Movie, error)
	listGenres     func(ctx context.Context) ([]string, error)
	findByGenre    func(ctx context.Context, name string) ([]*domain.Movie, error)
	findByDirector func(ctx context.Context, name string) ([]*domain.Movie, error)
	count          func(ctx context.Context) (int64, error)
}

func (r *fakeMovieRepo) List(ctx context.Context) ([]*domain.Movie, error) {
	return r.list(ctx)
}

func (r *fakeMovieRepo) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.findByTitle(ctx, title)
}

func (r *fakeMovieRepo) ListGenres(ctx context.Context) ([]string, error) {
	return r.listGenres(ctx)
}

func (r *fakeMovieRepo) FindByGenre(ctx context.Context, name string) ([]*domain.Movie, error) {
	return r.findByGenre(ctx, name)
}

func (r *fakeMovieRepo) FindByDirector(ctx context.Context, name string) ([]*domain.Movie, error) {
	return r.findByDirector(ctx, name)
}

func (r *fakeMovieRepo) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}

func TestGetByGenre_EmptyResult_IsNotFound(t *testing.T) {
	repo := &fakeMovieRepo{
		findByGenre: func(_ context.Context, _ string) ([]*domain.Movie, error) {
			return nil, nil
		},
	}

	_, err := usecase.NewMovieUsecase(repo).GetByGenre(context.Background(), "Ghost")
	if !errors.Is(err, domain.ErrGenreNotFound) {
		t.Errorf("err = %v, want ErrGenreNotFound", err)
	}
}

func TestGetByDirector_EmptyResult_IsNotFound(t *testing.T) {
	repo := &fakeMovieRepo{
		findByDirector: func(_ context.Context, _ string) ([]*domain.Movie, error) {
			return nil, nil
		},
	}

	_, err := usecase.NewMovieUsecase(repo).GetByDirector(context.Background(), "Nobody")
	if !errors.Is(err, domain.ErrDirectorNotFound) {
		t.Errorf("err = %v, want ErrDirectorNotFound", err)
	}
}

func TestGetByDirector_Known_ReturnsMovies(t *testing.T) {
	movie := &domain.Movie{ID: "movie-1", Title: "Alien"}
	repo := &fakeMovieRepo{
		findByDirector: func(_ context.Context, name string) ([]*domain.Movie, error) {
			if name != "Ridley Scott" {
				t.Errorf("name = %q, want Ridley Scott", name)
			}
			return []*domain.Movie{movie}, nil
		},
	}

	movies, err := usecase.NewMovieUsecase(repo).GetByDirector(context.Background(), "Ridley Scott")
	if err != nil {
		t.Fatalf("get by director: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Alien" {
		t.Errorf("movies = %v, want [Alien]", movies)
	}
}

func TestListMovies_RepoError_Propagates(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &fakeMovieRepo{
		list: func(_ context.Context) ([]*domain.Movie, error) {
			return nil, repoErr
		},
	}

	_, err := usecase.NewMovieUsecase(repo).List(context.Background())
	if !errors.Is(err, repoErr) {
		t.Errorf("want wrapped repoErr, got %v", err)
	}
}
