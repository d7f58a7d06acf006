package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// StockMovement es una entrada inmutable del libro de movimientos (append-only).
// Nunca se actualiza ni se borra; Product.Quantity se deriva de este libro.
type StockMovement struct {
	ID          int64
	ProductID   int64
	Type        string // IN u OUT
	Amount      int64  // siempre positivo; el signo lo da Type
	Date        time.Time
	Description string // opcional
}
