package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del libro de movimientos (DIP).
// El libro es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID int64) ([]*entity.StockMovement, error)
	ListAll() ([]*entity.StockMovement, error)
	CountByProduct(productID int64) (int64, error)
}
