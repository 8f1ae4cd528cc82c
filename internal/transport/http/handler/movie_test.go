package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/csanchez-dev/myflix-api/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

type fakeCatalog struct {
	list          func(ctx context.Context) ([]*domain.Movie, error)
	getByTitle    func(ctx context.Context, title string) (*domain.Movie, error)
	listGenres    func(ctx context.Context) ([]string, error)
	getByGenre    func(ctx context.Context, name string) ([]*domain.Movie, error)
	getByDirector func(ctx context.Context, name string) ([]*domain.Movie, error)
}

func (f *fakeCatalog) List(ctx context.Context) ([]*domain.Movie, error) {
	return f.list(ctx)
}

func (f *fakeCatalog) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return f.getByTitle(ctx, title)
}

func (f *fakeCatalog) ListGenres(ctx context.Context) ([]string, error) {
	return f.listGenres(ctx)
}

func (f *fakeCatalog) GetByGenre(ctx context.Context, name string) ([]*domain.Movie, error) {
	return f.getByGenre(ctx, name)
}

func (f *fakeCatalog) GetByDirector(ctx context.Context, name string) ([]*domain.Movie, error) {
	return f.getByDirector(ctx, name)
}

func newMovieEngine(c *fakeCatalog) *gin.Engine {
	h := handler.NewMovieHandler(c, testLogger())
	r := gin.New()
	r.GET("/movies", h.List)
	r.GET("/movies/:title", h.GetByTitle)
	r.GET("/genre", h.ListGenres)
	r.GET("/genre/:name", h.GetByGenre)
	r.GET("/director/:name", h.GetByDirector)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

var alien = &domain.Movie{
	ID:    "movie-1",
	Title: "Alien",
	Genre: domain.Genre{Name: "Horror"},
	Director: domain.Director{
		Name: "Ridley Scott",
	},
}

func TestListMovies_Returns200(t *testing.T) {
	c := &fakeCatalog{
		list: func(_ context.Context) ([]*domain.Movie, error) {
			return []*domain.Movie{alien}, nil
		},
	}
	w := get(t, newMovieEngine(c), "/movies")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var movies []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &movies); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(movies) != 1 || movies[0]["Title"] != "Alien" {
		t.Errorf("movies = %v, want one Alien entry", movies)
	}
}

func TestGetMovieByTitle_Unknown_Returns404(t *testing.T) {
	c := &fakeCatalog{
		getByTitle: func(_ context.Context, _ string) (*domain.Movie, error) {
			return nil, domain.ErrMovieNotFound
		},
	}
	w := get(t, newMovieEngine(c), "/movies/Ghost")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListGenres_EmptyCatalog_ReturnsEmptyArray(t *testing.T) {
	c := &fakeCatalog{
		listGenres: func(_ context.Context) ([]string, error) {
			return nil, nil
		},
	}
	w := get(t, newMovieEngine(c), "/genre")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestGetByGenre_Unknown_Returns404(t *testing.T) {
	c := &fakeCatalog{
		getByGenre: func(_ context.Context, _ string) ([]*domain.Movie, error) {
			return nil, domain.ErrGenreNotFound
		},
	}
	w := get(t, newMovieEngine(c), "/genre/Ghost")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetByDirector_Known_ReturnsMovies(t *testing.T) {
	c := &fakeCatalog{
		getByDirector: func(_ context.Context, name string) ([]*domain.Movie, error) {
			if name != "Ridley Scott" {
				t.Errorf("name = %q, want Ridley Scott", name)
			}
			return []*domain.Movie{alien}, nil
		},
	}
	w := get(t, newMovieEngine(c), "/director/Ridley%20Scott")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
