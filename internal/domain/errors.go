package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrFileNotFound        = errors.New("archivo de empleados no encontrado")
	ErrMalformedRecord     = errors.New("registro mal formado")
	ErrInvalidNumericField = errors.New("campo numérico inválido")
	ErrEmptyCollection     = errors.New("no hay empleados cargados")
	ErrInvalidLoadMode     = errors.New("modo de carga inválido")
	ErrUnsupportedEncoding = errors.New("codificación no soportada")
)
