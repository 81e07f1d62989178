package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dimasprs/skycast-api/internal/domain/entity"
	"github.com/dimasprs/skycast-api/internal/domain/repository"
)

// memRepo is an in-memory UserRepository for service tests.
type memRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*entity.User)}
}

func (r *memRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	u.CreatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	cp.SearchHistory = append([]entity.WeatherSearch(nil), u.SearchHistory...)
	return &cp, nil
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			cp.SearchHistory = append([]entity.WeatherSearch(nil), u.SearchHistory...)
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) UpdateHistory(_ context.Context, id string, history []entity.WeatherSearch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.SearchHistory = append([]entity.WeatherSearch(nil), history...)
	return nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

var _ repository.UserRepository = (*memRepo)(nil)

// brokenRepo fails every operation with the same error, standing in for an
// unreachable or misbehaving store.
type brokenRepo struct {
	err error
}

func (r *brokenRepo) Create(context.Context, *entity.User) error { return r.err }
func (r *brokenRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, r.err
}
func (r *brokenRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, r.err
}
func (r *brokenRepo) UpdateHistory(context.Context, string, []entity.WeatherSearch) error {
	return r.err
}
func (r *brokenRepo) Delete(context.Context, string) error { return r.err }

var _ repository.UserRepository = (*brokenRepo)(nil)
