package repository

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create asigna user.ID y user.CreatedAt. Devuelve domain.ErrEmailAlreadyExists
	// si el almacén rechaza el email por duplicado.
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail devuelve (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
