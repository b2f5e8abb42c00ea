package entity

import "strings"

// Category categoría de pago de un empleado.
type Category string

const (
	CategorySalaried Category = "Salaried"
	CategoryWages    Category = "Wages"
	CategoryPartTime Category = "PartTime"
)

// Categories orden fijo de reporte: Salaried, Wages, PartTime.
var Categories = []Category{CategorySalaried, CategoryWages, CategoryPartTime}

// Classify determina la categoría a partir del primer carácter del ID.
//
//	'0'–'4'        → Salaried
//	'8', '9'       → PartTime
//	cualquier otro → Wages (incluye '5'–'7', letras e ID vacío)
func Classify(id string) Category {
	id = strings.TrimSpace(id)
	if id == "" {
		return CategoryWages
	}
	switch c := id[0]; {
	case c >= '0' && c <= '4':
		return CategorySalaried
	case c == '8' || c == '9':
		return CategoryPartTime
	default:
		return CategoryWages
	}
}
