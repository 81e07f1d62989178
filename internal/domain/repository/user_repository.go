package repository

import (
	"context"
	"errors"

	"github.com/dimasprs/skycast-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create collides with the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateHistory(ctx context.Context, id string, history []entity.WeatherSearch) error
	// Delete removes the user record. Deleting an absent user is not an error.
	Delete(ctx context.Context, id string) error
}
