package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/infrastructure/memory"
)

func TestCategoryUseCase_CreateLongitudMinima(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryStore())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CategoryRequest{Name: dto.Text("A")})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Fields[0].Field)

	_, err = uc.Create(ctx, dto.CategoryRequest{Name: dto.Text("  A  ")})
	assert.ErrorAs(t, err, &verr, "se valida el nombre recortado")

	out, err := uc.Create(ctx, dto.CategoryRequest{Name: dto.Text(" AB ")})
	require.NoError(t, err)
	assert.Equal(t, "AB", out.Name)
	assert.Positive(t, out.ID)
}

func TestCategoryUseCase_NombreQueNoEsTexto(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryStore())
	ctx := context.Background()

	for _, in := range []string{"5", "true", `{"a":1}`} {
		_, err := uc.Create(ctx, dto.CategoryRequest{Name: raw(in)})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, in)
		assert.Equal(t, domain.FieldError{Field: "name", Reason: "name debe tener al menos 2 caracteres"}, verr.Fields[0])
	}

	created, err := uc.Create(ctx, dto.CategoryRequest{Name: dto.Text("Tools")})
	require.NoError(t, err)
	_, err = uc.Update(ctx, itoa(created.ID), dto.CategoryRequest{Name: raw("12")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.CategoryResponse{{ID: created.ID, Name: "Tools"}}, list)
}

func TestCategoryUseCase_GetUpdateDelete(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryStore())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CategoryRequest{Name: dto.Text("Tools")})
	require.NoError(t, err)
	id := itoa(created.ID)

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := uc.Update(ctx, id, dto.CategoryRequest{Name: dto.Text(" Herramientas ")})
	require.NoError(t, err)
	assert.Equal(t, &dto.CategoryResponse{ID: created.ID, Name: "Herramientas"}, updated)

	_, err = uc.Update(ctx, id, dto.CategoryRequest{Name: dto.Text("H")})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	require.NoError(t, uc.Delete(ctx, id))
	assert.ErrorIs(t, uc.Delete(ctx, id), domain.ErrNotFound, "borrar dos veces es NotFound")

	_, err = uc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, id, dto.CategoryRequest{Name: dto.Text("Otra")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_IDInvalido(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryStore())
	ctx := context.Background()

	_, err := uc.Get(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, "1.5", dto.CategoryRequest{Name: dto.Text("Tools")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Delete(ctx, ""), domain.ErrInvalidInput)
}

func TestCategoryUseCase_DeleteInexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryStore())

	assert.ErrorIs(t, uc.Delete(context.Background(), "999"), domain.ErrNotFound)
}

func TestCategoryUseCase_ListEnOrdenDeInsercion(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryStore())
	ctx := context.Background()

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, name := range []string{"Tools", "Paint", "Garden"} {
		_, err := uc.Create(ctx, dto.CategoryRequest{Name: dto.Text(name)})
		require.NoError(t, err)
	}
	list, err = uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Tools", list[0].Name)
	assert.Equal(t, "Garden", list[2].Name)
}
