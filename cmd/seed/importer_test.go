package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/infrastructure/memory"
	"github.com/jhoicas/lager-api/pkg/logger"
)

func newTestImporter() (*importer, *usecase.CategoryUseCase, *usecase.ProductUseCase) {
	categories := memory.NewCategoryStore()
	catUC := usecase.NewCategoryUseCase(categories)
	prodUC := usecase.NewProductUseCase(memory.NewProductStore(categories))
	return newImporter(catUC, prodUC, logger.Nop()), catUC, prodUC
}

func TestImporter_CreaCategoriasYProductos(t *testing.T) {
	imp, catUC, prodUC := newTestImporter()
	csv := "sku;name;category;price;quantity;location\n" +
		"T-1;Martillo;Herramientas;12.50;3;A-1\n" +
		"T-2;Sierra;herramientas;;;\n" +
		"P-1;Brocha;Pintura;4;10;B-2\n"

	res, err := imp.Run(context.Background(), strings.NewReader(csv), ';')
	require.NoError(t, err)
	assert.Equal(t, result{Categories: 2, Products: 3}, res)

	cats, err := catUC.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Herramientas", cats[0].Name)

	products, err := prodUC.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	saw := products[1]
	assert.Equal(t, "T-2", saw.SKU)
	assert.Equal(t, 0, saw.Quantity)
	assert.False(t, saw.Price.Valid)
	require.NotNil(t, saw.CategoryName)
	assert.Equal(t, "Herramientas", *saw.CategoryName)
}

func TestImporter_FilasInvalidasSeSaltan(t *testing.T) {
	imp, _, prodUC := newTestImporter()
	csv := "sku,name,quantity,category\n" +
		"T-1,Martillo,-1,\n" +
		",Sierra,1,\n" +
		"T-3,Taladro,2,X\n" +
		"T-4,Llave,5,\n"

	res, err := imp.Run(context.Background(), strings.NewReader(csv), ',')
	require.NoError(t, err)
	assert.Equal(t, result{Products: 1, Rejected: 3}, res)

	products, _ := prodUC.List(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "T-4", products[0].SKU)
}

func TestImporter_Latin1(t *testing.T) {
	imp, catUC, _ := newTestImporter()
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, charmap.ISO8859_1.NewEncoder())
	_, err := w.Write([]byte("sku,name,category\nJ-1,Pincel,Jardinería\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = imp.Run(context.Background(), transform.NewReader(&buf, charmap.ISO8859_1.NewDecoder()), ',')
	require.NoError(t, err)

	cats, _ := catUC.List(context.Background())
	require.Len(t, cats, 1)
	assert.Equal(t, "Jardinería", cats[0].Name)
}

func TestImporter_SinColumnasObligatorias(t *testing.T) {
	imp, _, _ := newTestImporter()

	_, err := imp.Run(context.Background(), strings.NewReader("codigo,nombre\nA,B\n"), ',')
	assert.Error(t, err)
}
