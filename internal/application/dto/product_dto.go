package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// Quantity es el saldo inicial del cache; NO genera un movimiento de apertura
// (quien quiera saldo inicial con rastro debe registrar un movimiento IN aparte).
type CreateProductRequest struct {
	Code       string `json:"code" validate:"required,min=1,max=100"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Category   string `json:"category"`
	Quantity   int64  `json:"quantity" validate:"min=0"`
	Location   string `json:"location"`
	Note       string `json:"note"`
	ExpiryDate string `json:"expiry_date"`
}

// UpdateProductRequest entrada para actualizar un producto (patch: solo se
// sobreescriben los campos presentes). Quantity no es actualizable por aquí.
type UpdateProductRequest struct {
	Code       *string `json:"code" validate:"omitempty,min=1,max=100"`
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Category   *string `json:"category"`
	Location   *string `json:"location"`
	Note       *string `json:"note"`
	ExpiryDate *string `json:"expiry_date"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         int64     `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Category   string    `json:"category,omitempty"`
	Quantity   int64     `json:"quantity"`
	Location   string    `json:"location,omitempty"`
	Note       string    `json:"note,omitempty"`
	ExpiryDate string    `json:"expiry_date,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProductListResponse listado completo de productos (la app es local, sin paginación).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
