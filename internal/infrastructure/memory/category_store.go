package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryStore)(nil)

// CategoryStore guarda categorías en orden de inserción.
type CategoryStore struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	byID   map[int64]string
}

// NewCategoryStore crea un almacén vacío.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{byID: make(map[int64]string)}
}

func (s *CategoryStore) List(_ context.Context) ([]*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*entity.Category, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, &entity.Category{ID: id, Name: s.byID[id]})
	}
	return list, nil
}

func (s *CategoryStore) Create(_ context.Context, category *entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	category.ID = s.nextID
	s.byID[category.ID] = category.Name
	s.order = append(s.order, category.ID)
	return nil
}

func (s *CategoryStore) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, exists := s.byID[id]
	if !exists {
		return nil, nil
	}
	return &entity.Category{ID: id, Name: name}, nil
}

func (s *CategoryStore) Update(_ context.Context, category *entity.Category) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[category.ID]; !exists {
		return false, nil
	}
	s.byID[category.ID] = category.Name
	return true, nil
}

func (s *CategoryStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return false, nil
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// name devuelve el nombre de la categoría o nil si no existe.
func (s *CategoryStore) name(id int64) *string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, exists := s.byID[id]
	if !exists {
		return nil
	}
	return &n
}
