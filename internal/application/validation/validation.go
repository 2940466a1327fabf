// Package validation traduce las reglas de entrada de cada operación a
// errores de dominio estructurados (campo + razón), en el orden de evaluación.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/lager-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON, que es lo que ve el cliente.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct valida in según sus tags `validate`. Devuelve nil o un *domain.ValidationError
// con los campos en el orden en que están declarados en el struct.
func Struct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar %T: %w", in, err)
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{Field: fe.Field(), Reason: reason(fe.Field(), fe)})
	}
	return out
}

// Schema acumula fallos campo a campo para las operaciones cuya entrada no cabe en tags
// (valores que hay que convertir antes de validar).
type Schema struct {
	fields []domain.FieldError
}

// Var valida value con las reglas de tag. Si falla registra el campo y devuelve false.
func (s *Schema) Var(field string, value any, tag string) bool {
	err := validate.Var(value, tag)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		s.Fail(field, reason(field, verrs[0]))
	} else {
		s.Fail(field, fmt.Sprintf("%s es inválido", field))
	}
	return false
}

// Fail registra un fallo con una razón explícita.
func (s *Schema) Fail(field, reason string) {
	s.fields = append(s.fields, domain.FieldError{Field: field, Reason: reason})
}

// Err devuelve nil si no hubo fallos.
func (s *Schema) Err() error {
	if len(s.fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: s.fields}
}

// ID convierte un identificador recibido como texto (segmento de ruta) a entero.
func ID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id", "id debe ser un entero")
	}
	return id, nil
}

func reason(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser mayor o igual a %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener como máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser menor o igual a %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s es inválido", field)
	}
}
