package repository

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// List devuelve todos los productos con el nombre de su categoría, del más reciente al más antiguo.
	List(ctx context.Context) ([]*entity.Product, error)
	// Create persiste el producto y devuelve el id asignado por el almacén.
	Create(ctx context.Context, product *entity.Product) (int64, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
