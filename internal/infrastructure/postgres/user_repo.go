package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/csanchez-dev/myflix-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRep      = "22P02"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `u.id, u.username, u.password_hash, u.email, u.birthday, u.created_at, u.updated_at,
	COALESCE(array_agg(f.movie_id::text) FILTER (WHERE f.movie_id IS NOT NULL), '{}')`

const userJoin = `FROM users u
	LEFT JOIN user_favorites f ON f.user_id = u.id`

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, email, birthday)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, user.Email, user.Birthday,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` `+userJoin+` WHERE u.id = $1 GROUP BY u.id`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` `+userJoin+` WHERE u.username = $1 GROUP BY u.id`, username)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET
			username      = COALESCE($2, username),
			password_hash = COALESCE($3, password_hash),
			email         = COALESCE($4, email),
			birthday      = COALESCE($5, birthday),
			updated_at    = NOW()
		 WHERE id = $1`,
		id, upd.Username, upd.PasswordHash, upd.Email, upd.Birthday,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) AddFavorite(ctx context.Context, userID, movieID string) (*domain.User, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_favorites (user_id, movie_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, movie_id) DO NOTHING`,
		userID, movieID,
	)
	if err != nil {
		// FK failures distinguish a missing movie from a missing user. A
		// movie id that is not even a valid UUID counts as missing too.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				if pgErr.ConstraintName == "user_favorites_movie_id_fkey" {
					return nil, domain.ErrMovieNotFound
				}
				return nil, domain.ErrUserNotFound
			case pgInvalidTextRep:
				return nil, domain.ErrMovieNotFound
			}
		}
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return r.FindByID(ctx, userID)
}

func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, movieID string) (*domain.User, error) {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM user_favorites WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRep {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("remove favorite: %w", err)
	}
	return r.FindByID(ctx, userID)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Birthday,
		&u.CreatedAt, &u.UpdatedAt, &u.Favorites,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
