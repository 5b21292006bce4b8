package repository

import (
	"context"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (Credential Store).
// Los Get devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
}
