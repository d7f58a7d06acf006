package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicateCode     = errors.New("el código de producto ya existe")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidAmount     = errors.New("la cantidad debe ser mayor que cero")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrHasMovements      = errors.New("el producto tiene movimientos de stock asociados")
)
