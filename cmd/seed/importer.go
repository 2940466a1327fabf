package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/pkg/logger"
)

// result resume una importación.
type result struct {
	Categories int // categorías creadas
	Products   int
	Rejected   int // filas que no pasaron la validación
}

type importer struct {
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	log        *logger.Logger
}

func newImporter(categories *usecase.CategoryUseCase, products *usecase.ProductUseCase, log *logger.Logger) *importer {
	return &importer{categories: categories, products: products, log: log}
}

// Run lee el CSV y crea las categorías que falten y un producto por fila.
// Una fila inválida se registra y se salta; un error del almacén aborta.
func (imp *importer) Run(ctx context.Context, r io.Reader, comma rune) (result, error) {
	var res result

	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return res, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"sku", "name"} {
		if _, ok := cols[required]; !ok {
			return res, fmt.Errorf("falta la columna %q", required)
		}
	}

	byName, err := imp.existingCategories(ctx)
	if err != nil {
		return res, err
	}

	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return res, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		in := dto.CreateProductRequest{
			SKU:      dto.Text(get("sku")),
			Name:     dto.Text(get("name")),
			Price:    rawOrNull(get("price")),
			Quantity: rawOrNull(get("quantity")),
			IsActive: rawOrNull(get("is_active")),
		}
		if v := get("description"); v != "" {
			in.Description = &v
		}
		if v := get("location"); v != "" {
			in.Location = &v
		}

		if name := get("category"); name != "" {
			id, created, err := imp.category(ctx, byName, name)
			if err != nil {
				if imp.rejected(err, line) {
					res.Rejected++
					continue
				}
				return res, err
			}
			if created {
				res.Categories++
			}
			in.CategoryID = json.RawMessage(fmt.Sprintf("%d", id))
		}

		if _, err := imp.products.Create(ctx, in); err != nil {
			if imp.rejected(err, line) {
				res.Rejected++
				continue
			}
			return res, fmt.Errorf("línea %d: %w", line, err)
		}
		res.Products++
	}
	return res, nil
}

func (imp *importer) existingCategories(ctx context.Context) (map[string]int64, error) {
	list, err := imp.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	byName := make(map[string]int64, len(list))
	for _, c := range list {
		byName[strings.ToLower(c.Name)] = c.ID
	}
	return byName, nil
}

// category devuelve el id de la categoría por nombre (sin distinguir mayúsculas) y la crea si no existe.
func (imp *importer) category(ctx context.Context, byName map[string]int64, name string) (int64, bool, error) {
	key := strings.ToLower(name)
	if id, ok := byName[key]; ok {
		return id, false, nil
	}
	c, err := imp.categories.Create(ctx, dto.CategoryRequest{Name: dto.Text(name)})
	if err != nil {
		return 0, false, err
	}
	byName[key] = c.ID
	return c.ID, true, nil
}

func (imp *importer) rejected(err error, line int) bool {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	imp.log.Warn().Int("line", line).Interface("fields", verr.Fields).Msg("fila rechazada")
	return true
}

// rawOrNull convierte una celda en valor JSON: vacía es null, el resto texto.
// Los casos de uso aceptan números en texto.
func rawOrNull(cell string) json.RawMessage {
	if cell == "" {
		return nil
	}
	raw, _ := json.Marshal(cell)
	return raw
}
