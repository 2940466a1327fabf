// Package memory implementa los puertos de persistencia en memoria. Se usa en tests y con
// DB_DRIVER=memory para levantar la API sin PostgreSQL.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore guarda usuarios indexados por email. Reproduce la restricción UNIQUE(email).
type UserStore struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]*entity.User
}

// NewUserStore crea un almacén vacío.
func NewUserStore() *UserStore {
	return &UserStore{byEmail: make(map[string]*entity.User)}
}

// Create persiste el usuario y le asigna ID y CreatedAt.
func (s *UserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now().UTC()
	stored := *user
	s.byEmail[user.Email] = &stored
	return nil
}

// GetByEmail devuelve (nil, nil) si no existe.
func (s *UserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.byEmail[email]
	if !exists {
		return nil, nil
	}
	out := *u
	return &out, nil
}
