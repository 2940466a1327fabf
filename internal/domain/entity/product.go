package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// CategoryID puede apuntar a una categoría inexistente: no se verifica al insertar.
type Product struct {
	ID           int64
	SKU          string
	Name         string
	Description  *string
	CategoryID   *int64
	CategoryName *string // solo en lecturas con join; nil si no hay categoría resuelta
	Location     *string
	Price        decimal.NullDecimal
	Quantity     int
	IsActive     bool
	CreatedAt    time.Time
}
