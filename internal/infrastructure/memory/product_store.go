package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore guarda productos. Como en PostgreSQL sin FK, category_id no se verifica:
// el nombre de categoría se resuelve al leer y queda nil si la referencia cuelga.
type ProductStore struct {
	mu         sync.RWMutex
	nextID     int64
	items      []entity.Product
	categories *CategoryStore
}

// NewProductStore crea un almacén vacío que resuelve nombres contra categories.
func NewProductStore(categories *CategoryStore) *ProductStore {
	return &ProductStore{categories: categories}
}

// List devuelve los productos del más reciente al más antiguo.
func (s *ProductStore) List(_ context.Context) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*entity.Product, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		list = append(list, s.withCategory(s.items[i]))
	}
	return list, nil
}

func (s *ProductStore) Create(_ context.Context, product *entity.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *product
	stored.ID = s.nextID
	stored.CategoryName = nil
	stored.CreatedAt = time.Now().UTC()
	s.items = append(s.items, stored)
	return stored.ID, nil
}

func (s *ProductStore) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.ID == id {
			return s.withCategory(p), nil
		}
	}
	return nil, nil
}

func (s *ProductStore) withCategory(p entity.Product) *entity.Product {
	if p.CategoryID != nil && s.categories != nil {
		p.CategoryName = s.categories.name(*p.CategoryID)
	}
	return &p
}
