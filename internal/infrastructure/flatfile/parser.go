// Package flatfile lee el archivo plano de empleados (campos separados por ':').
//
// Formato de cada línea:
//
//	id:nombre:dirección:teléfono:SIN:fechaNacimiento:departamento:tarifaOSalario[:horas]
//
// Sin encabezado, sin comillas, sin escape de ':'.
package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/paystats/internal/domain"
	"github.com/jhoicas/paystats/internal/domain/entity"
)

const (
	separator = ":"
	minFields = 8
)

// Posiciones de los campos dentro de la línea.
const (
	fieldID = iota
	fieldName
	fieldAddress
	fieldPhone
	fieldSIN
	fieldDOB
	fieldDepartment
	fieldRateOrSalary
	fieldHours
)

// ParseError error de una línea concreta. Unwrap devuelve
// domain.ErrMalformedRecord o domain.ErrInvalidNumericField.
type ParseError struct {
	Line  int    // 1-based; 0 si la línea no viene de un archivo
	Field string // vacío para ErrMalformedRecord
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "línea %d: ", e.Line)
	}
	b.WriteString(e.Err.Error())
	if e.Field != "" {
		fmt.Fprintf(&b, " (%s=%q)", e.Field, e.Value)
	} else if e.Value != "" {
		fmt.Fprintf(&b, " (%s)", e.Value)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine convierte una línea en la variante de empleado que indica su ID.
// Las horas son opcionales (0 si faltan); si están presentes deben ser numéricas.
func ParseLine(line string) (entity.Employee, error) {
	parts := strings.Split(line, separator)
	if len(parts) < minFields {
		return nil, &ParseError{
			Err:   domain.ErrMalformedRecord,
			Value: fmt.Sprintf("%d campos, se esperaban al menos %d", len(parts), minFields),
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	sin, err := strconv.ParseInt(parts[fieldSIN], 10, 64)
	if err != nil {
		return nil, numericError("sin", parts[fieldSIN])
	}
	rateOrSalary, err := parseAmount(parts[fieldRateOrSalary])
	if err != nil {
		return nil, numericError("rate_or_salary", parts[fieldRateOrSalary])
	}
	hours := decimal.Zero
	if len(parts) > fieldHours {
		hours, err = parseAmount(parts[fieldHours])
		if err != nil {
			return nil, numericError("hours", parts[fieldHours])
		}
	}

	p := entity.Person{
		ID:          parts[fieldID],
		Name:        parts[fieldName],
		Address:     parts[fieldAddress],
		Phone:       parts[fieldPhone],
		SIN:         sin,
		DateOfBirth: parts[fieldDOB],
		Department:  parts[fieldDepartment],
	}
	return entity.New(p, rateOrSalary, hours), nil
}

// parseAmount usa '.' como separador decimal sin importar el locale del host.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func numericError(field, value string) *ParseError {
	return &ParseError{Err: domain.ErrInvalidNumericField, Field: field, Value: value}
}
