package entity

import "time"

// Product representa un producto del catálogo local.
// Quantity es el stock actual cacheado: lo mantiene el motor de movimientos
// y debe coincidir siempre con la suma firmada de sus StockMovement.
type Product struct {
	ID         int64
	Code       string // código único del producto
	Name       string
	Category   string // opcional
	Quantity   int64  // nunca negativo
	Location   string // opcional
	Note       string // opcional
	CreatedAt  time.Time
	ExpiryDate string // fecha de vencimiento opcional (texto)
}
