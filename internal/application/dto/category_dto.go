package dto

import "encoding/json"

// CategoryRequest entrada para crear o renombrar una categoría.
// Name llega sin tipar para que un valor que no es texto sea un error del campo.
type CategoryRequest struct {
	Name json.RawMessage `json:"name" swaggertype:"string"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
