package repository

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// UserFilter filtros para listados de usuarios.
type UserFilter struct {
	Role string
}

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, filter UserFilter) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	// UpdateRefreshToken guarda el bcrypt del refresh token vigente; nil lo limpia (logout).
	UpdateRefreshToken(ctx context.Context, id string, hashed *string) error
}
