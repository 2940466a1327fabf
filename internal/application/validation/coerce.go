package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNotInteger = errors.New("no es un entero")
	errNotNumber  = errors.New("no es un número")
	errNotFinite  = errors.New("no es un número finito")
	errNotString  = errors.New("no es texto")
)

// IsNull indica si el valor está ausente o es null.
func IsNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Int convierte un número JSON o un texto numérico a entero.
// Acepta flotantes sin parte decimal (3.0); rechaza 1.5, "abc", booleanos y texto vacío.
func Int(raw json.RawMessage) (int64, error) {
	v, err := decodeScalar(raw)
	if err != nil {
		return 0, err
	}
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, errNotInteger
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errNotInteger
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errNotInteger
	}
	return int64(f), nil
}

// Decimal convierte un número JSON o un texto numérico a decimal finito.
func Decimal(raw json.RawMessage) (decimal.Decimal, error) {
	v, err := decodeScalar(raw)
	if err != nil {
		return decimal.Zero, err
	}
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return decimal.Zero, errNotNumber
	}
	// Fuera del rango de float64 el valor no es finito; se descarta antes de
	// construir el decimal para no expandir exponentes enormes.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return decimal.Zero, errNotNumber
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, errNotFinite
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errNotNumber
	}
	if d.Exponent() < minDecimalExponent {
		return decimal.Zero, errNotFinite
	}
	return d, nil
}

// minDecimalExponent límite de dígitos tras el punto de NUMERIC en PostgreSQL.
const minDecimalExponent = -16383

// Text devuelve el texto de un valor JSON. Ausente o null es "", y cualquier otro
// tipo (número, booleano, objeto) es un error.
func Text(raw json.RawMessage) (string, error) {
	if IsNull(raw) {
		return "", nil
	}
	v, err := decodeScalar(raw)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errNotString
	}
	return s, nil
}

// Flag convierte un valor a bandera 0/1 con la semántica de "verdadero" habitual:
// null o ausente es verdadero; números distintos de cero son verdaderos; los textos
// se interpretan con strconv.ParseBool y, si no aplica, cualquier texto no vacío es verdadero.
func Flag(raw json.RawMessage) (bool, error) {
	if IsNull(raw) {
		return true, nil
	}
	v, err := decodeScalar(raw)
	if err != nil {
		return false, err
	}
	switch t := v.(type) {
	case bool:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return false, errNotNumber
		}
		return f != 0, nil
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b, nil
		}
		return t != "", nil
	default:
		return false, fmt.Errorf("tipo no soportado %T", v)
	}
}

// decodeScalar decodifica un único valor JSON preservando los números como json.Number.
func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
