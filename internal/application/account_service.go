package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dimasprs/skycast-api/internal/domain/entity"
	repo "github.com/dimasprs/skycast-api/internal/domain/repository"
	"github.com/dimasprs/skycast-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyCity          = errors.New("city is required")
)

// AccountService orchestrates registration, login, search history, and
// account deletion on top of the credential store, password hasher, and
// token service.
type AccountService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int
}

func NewAccountService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, bcryptCost int) *AccountService {
	return &AccountService{Repo: r, JWT: jwt, Logger: logger, BcryptCost: bcryptCost}
}

// NormalizeEmail folds an address to the form stored in the database.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and issues a bearer token for the new account.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hashing failed")
		}
		return nil, "", err
	}

	u := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    NormalizeEmail(email),
		Password: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, _, err := s.JWT.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		}
		return nil, "", err
	}
	return u, token, nil
}

// Login validates credentials and issues a bearer token. Unknown email and
// wrong password collapse to the same error so callers cannot enumerate
// accounts; store failures propagate unchanged so they surface as 500s.
func (s *AccountService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		}
		return nil, "", err
	}
	return u, token, nil
}

// GetProfile returns the user record including search history.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// AddSearch prepends a city to the user's search history, keeping the three
// most recent entries. Concurrent updates to the same user are last-write-wins.
func (s *AccountService) AddSearch(ctx context.Context, userID, city string) ([]entity.WeatherSearch, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.RecordSearch(city, time.Now().UTC())
	if err := s.Repo.UpdateHistory(ctx, u.ID, u.SearchHistory); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u.SearchHistory, nil
}

// DeleteAccount removes the user record. Deleting an absent account succeeds.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	return s.Repo.Delete(ctx, userID)
}
