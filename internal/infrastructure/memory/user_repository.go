package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.users {
		if strings.EqualFold(e.Email, u.Email) {
			return domain.Errorf(domain.ErrDuplicate, "Email already registered")
		}
	}
	r.s.users = append(r.s.users, clone(u))
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			u.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.Errorf(domain.ErrUserNotFound, "User not found")
}

func (r *UserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if u.Role == role {
			out = append(out, clone(u))
		}
	}
	return out, nil
}

// SetRole cambia el rol de un usuario. Solo lo usan los tests de refresh.
func (r *UserRepo) SetRole(id, role string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u.Role = role
		}
	}
}

// Delete elimina un usuario. Solo lo usan los tests de refresh.
func (r *UserRepo) Delete(id string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = slices.DeleteFunc(r.s.users, func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepo) find(match func(*entity.User) bool) *entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if match(u) {
			return clone(u)
		}
	}
	return nil
}
