package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// price se serializa como número JSON, igual que lo guarda el almacén.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateProductRequest entrada para crear un producto.
// Los campos llegan sin tipar y se validan en el caso de uso: sku y name deben ser texto;
// quantity, price y category_id aceptan número o texto numérico.
type CreateProductRequest struct {
	SKU         json.RawMessage `json:"sku" swaggertype:"string"`
	Name        json.RawMessage `json:"name" swaggertype:"string"`
	Description *string         `json:"description"`
	CategoryID  json.RawMessage `json:"category_id" swaggertype:"integer"`
	Location    *string         `json:"location"`
	Price       json.RawMessage `json:"price" swaggertype:"number"`
	Quantity    json.RawMessage `json:"quantity" swaggertype:"integer"`
	IsActive    json.RawMessage `json:"is_active" swaggertype:"boolean"`
}

// ProductResponse salida de un producto. IsActive se expone como 0/1.
type ProductResponse struct {
	ID           int64               `json:"id"`
	SKU          string              `json:"sku"`
	Name         string              `json:"name"`
	Description  *string             `json:"description"`
	CategoryID   *int64              `json:"category_id"`
	CategoryName *string             `json:"category_name"`
	Location     *string             `json:"location"`
	Price        decimal.NullDecimal `json:"price" swaggertype:"number"`
	Quantity     int                 `json:"quantity"`
	IsActive     int                 `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
}
