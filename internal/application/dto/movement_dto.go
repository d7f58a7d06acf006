package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de stock.
type RegisterMovementRequest struct {
	ProductID   int64  `json:"product_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=IN OUT"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description"`
}

// MovementResponse salida de una entrada del libro de movimientos.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

// MovementListResponse movimientos de un producto, el más reciente primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
