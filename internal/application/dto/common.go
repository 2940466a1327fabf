package dto

import (
	"encoding/json"

	"github.com/jhoicas/lager-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP. Fields solo se incluye en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// Text codifica s como valor JSON, para armar entradas desde código (importador, tests).
func Text(s string) json.RawMessage {
	raw, _ := json.Marshal(s)
	return raw
}
