package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/application/validation"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías en el orden del almacén.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return items, nil
}

// Create crea una categoría con el nombre recortado (mínimo 2 caracteres).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name, err := parseCategoryName(in)
	if err != nil {
		return nil, err
	}
	category := &entity.Category{Name: name}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// Get obtiene una categoría por su id en texto (tal como llega en la ruta).
func (uc *CategoryUseCase) Get(ctx context.Context, rawID string) (*dto.CategoryResponse, error) {
	id, err := validation.ID(rawID)
	if err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// Update renombra una categoría. Devuelve solo id y nombre recortado, no la fila releída.
func (uc *CategoryUseCase) Update(ctx context.Context, rawID string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	id, err := validation.ID(rawID)
	if err != nil {
		return nil, err
	}
	name, err := parseCategoryName(in)
	if err != nil {
		return nil, err
	}
	category := &entity.Category{ID: id, Name: name}
	updated, err := uc.repo.Update(ctx, category)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrNotFound
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// Delete elimina una categoría. Los productos que la referencian conservan su category_id.
func (uc *CategoryUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := validation.ID(rawID)
	if err != nil {
		return err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// parseCategoryName exige texto con al menos 2 caracteres tras recortar.
// Un valor que no es texto se reporta con el mismo motivo que un nombre corto.
func parseCategoryName(in dto.CategoryRequest) (string, error) {
	var s validation.Schema
	name, err := validation.Text(in.Name)
	if err != nil {
		s.Fail("name", nameTooShort)
		return "", s.Err()
	}
	name = strings.TrimSpace(name)
	s.Var("name", name, "required,min=2")
	return name, s.Err()
}

const nameTooShort = "name debe tener al menos 2 caracteres"

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
