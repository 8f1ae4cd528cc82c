package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieRepository struct {
	pool *pgxpool.Pool
}

func NewMovieRepository(pool *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{pool: pool}
}

const movieColumns = `id, title, description, genre_name, genre_description,
	director_name, director_bio, director_birth_year, image_path, featured`

func (r *MovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE title = $1`, title)

	m, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MovieRepository) ListGenres(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT genre_name FROM movies WHERE genre_name <> '' ORDER BY genre_name`)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

func (r *MovieRepository) FindByGenre(ctx context.Context, name string) ([]*domain.Movie, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE genre_name = $1 ORDER BY title`, name)
	if err != nil {
		return nil, fmt.Errorf("find by genre: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

func (r *MovieRepository) FindByDirector(ctx context.Context, name string) ([]*domain.Movie, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE director_name = $1 ORDER BY title`, name)
	if err != nil {
		return nil, fmt.Errorf("find by director: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var m domain.Movie
	err := row.Scan(
		&m.ID, &m.Title, &m.Description,
		&m.Genre.Name, &m.Genre.Description,
		&m.Director.Name, &m.Director.Bio, &m.Director.Birth,
		&m.ImagePath, &m.Featured,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMovies(rows pgx.Rows) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read movies: %w", err)
	}
	return movies, nil
}
