package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/application/validation"
	"github.com/jhoicas/lager-api/internal/domain"
)

type sample struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Ignored  string `json:"-"`
}

func TestStruct_Valido(t *testing.T) {
	assert.NoError(t, validation.Struct(sample{Email: "a@b.com", Password: "secret1"}))
}

func TestStruct_CamposEnOrdenDeDeclaracion(t *testing.T) {
	err := validation.Struct(sample{Password: "123"})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, domain.FieldError{Field: "email", Reason: "email es requerido"}, verr.Fields[0])
	assert.Equal(t, domain.FieldError{Field: "password", Reason: "password debe tener al menos 6 caracteres"}, verr.Fields[1])
	assert.Equal(t, "email es requerido", verr.Message())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSchema_AcumulaFallos(t *testing.T) {
	var s validation.Schema
	assert.True(t, s.Var("name", "AB", "required,min=2"))
	assert.NoError(t, s.Err())

	assert.False(t, s.Var("name", "A", "required,min=2"))
	assert.False(t, s.Var("quantity", int64(-1), "min=0"))
	s.Fail("price", "price debe ser un número")

	var verr *domain.ValidationError
	require.ErrorAs(t, s.Err(), &verr)
	assert.Equal(t, []domain.FieldError{
		{Field: "name", Reason: "name debe tener al menos 2 caracteres"},
		{Field: "quantity", Reason: "quantity debe ser mayor o igual a 0"},
		{Field: "price", Reason: "price debe ser un número"},
	}, verr.Fields)
}

func TestID(t *testing.T) {
	id, err := validation.ID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "1.5", "99999999999999999999"} {
		_, err := validation.ID(raw)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, raw)
		assert.Equal(t, "id", verr.Fields[0].Field)
	}
}
