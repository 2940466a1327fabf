package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/domain"
)

func TestBcryptHasher_HashYCompare(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost, 1)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	again, err := h.Hash(ctx, "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "cada hash lleva su propia sal")

	ok, err := h.Compare(ctx, hash, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(ctx, hash, "secret2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_PasswordDemasiadoLargo(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost, 1)

	_, err := h.Hash(context.Background(), strings.Repeat("x", 73))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Fields[0].Field)
}

func TestBcryptHasher_HashCorruptoEsError(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost, 1)

	_, err := h.Compare(context.Background(), "no-es-bcrypt", "secret1")
	assert.Error(t, err)
}

func TestBcryptHasher_RespetaCancelacion(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "secret1")
	assert.ErrorIs(t, err, context.Canceled)
}
