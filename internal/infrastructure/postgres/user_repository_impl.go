package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dimasprs/skycast-api/internal/domain/entity"
	"github.com/dimasprs/skycast-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	history, err := json.Marshal(u.SearchHistory)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, search_history)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, u.Email, u.Password, u.Name, history)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation on the email index
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name, search_history, created_at
		FROM users
		WHERE id::text = $1
	`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name, search_history, created_at
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var history []byte
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &history, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &u.SearchHistory); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (r *UserRepository) UpdateHistory(ctx context.Context, id string, history []entity.WeatherSearch) error {
	if history == nil {
		history = []entity.WeatherSearch{}
	}
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET search_history = $1
		WHERE id::text = $2
	`, b, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	// Idempotent: zero rows affected is still success.
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id::text = $1`, id)
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
