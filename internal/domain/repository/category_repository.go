package repository

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// Update devuelve false si ninguna fila fue afectada.
	Update(ctx context.Context, category *entity.Category) (bool, error)
	// Delete devuelve false si ninguna fila fue eliminada.
	Delete(ctx context.Context, id int64) (bool, error)
}
