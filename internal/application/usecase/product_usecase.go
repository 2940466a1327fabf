package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/application/validation"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos: alta y listado.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista todos los productos con el nombre de su categoría, los más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// Create valida y persiste un producto y devuelve la fila releída del almacén
// (con created_at y los valores por defecto que éste asigna).
// category_id no se contrasta con las categorías existentes.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := parseCreateProduct(in)
	if err != nil {
		return nil, err
	}
	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	stored, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("producto %d no encontrado tras insertarlo", id)
	}
	out := toProductResponse(stored)
	return &out, nil
}

// parseCreateProduct aplica las reglas en orden: sku, name, quantity, price, category_id.
// Se evalúan todas; el primer fallo es el mensaje principal del error.
func parseCreateProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	var s validation.Schema
	p := &entity.Product{
		Description: in.Description,
		Location:    in.Location,
	}

	if sku, err := validation.Text(in.SKU); err != nil {
		s.Fail("sku", "sku debe ser texto")
	} else {
		p.SKU = strings.TrimSpace(sku)
		s.Var("sku", p.SKU, "required")
	}

	if name, err := validation.Text(in.Name); err != nil {
		s.Fail("name", nameTooShort)
	} else {
		p.Name = strings.TrimSpace(name)
		s.Var("name", p.Name, "required,min=2")
	}

	if !validation.IsNull(in.Quantity) {
		q, err := validation.Int(in.Quantity)
		switch {
		case err != nil:
			s.Fail("quantity", "quantity debe ser un entero mayor o igual a 0")
		case !s.Var("quantity", q, "min=0"):
		case q > maxQuantity:
			s.Fail("quantity", fmt.Sprintf("quantity debe ser menor o igual a %d", maxQuantity))
		default:
			p.Quantity = int(q)
		}
	}

	if !validation.IsNull(in.Price) {
		price, err := validation.Decimal(in.Price)
		if err != nil {
			s.Fail("price", "price debe ser un número finito")
		} else {
			p.Price = decimal.NullDecimal{Decimal: price, Valid: true}
		}
	}

	if !validation.IsNull(in.CategoryID) {
		id, err := validation.Int(in.CategoryID)
		if err != nil {
			s.Fail("category_id", "category_id debe ser un entero")
		} else {
			p.CategoryID = &id
		}
	}

	active, err := validation.Flag(in.IsActive)
	if err != nil {
		s.Fail("is_active", "is_active debe ser booleano")
	}
	p.IsActive = active

	if err := s.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// maxQuantity es el máximo de la columna INTEGER.
const maxQuantity = 1<<31 - 1

func toProductResponse(p *entity.Product) dto.ProductResponse {
	active := 0
	if p.IsActive {
		active = 1
	}
	return dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Location:     p.Location,
		Price:        p.Price,
		Quantity:     p.Quantity,
		IsActive:     active,
		CreatedAt:    p.CreatedAt,
	}
}
