package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre SQLite (usable con DB o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar DB o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega una entrada al libro y asigna el ID generado.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, type, amount, date, description)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(context.Background(), query,
		movement.ProductID, movement.Type, movement.Amount,
		formatTime(movement.Date), nullable(movement.Description),
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	movement.ID = id
	return nil
}

// ListByProduct lista los movimientos de un producto, el más reciente primero.
func (r *StockMovementRepo) ListByProduct(productID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, amount, date, description
		FROM stock_movements WHERE product_id = ?
		ORDER BY date DESC, id DESC`
	return r.queryMovements(query, productID)
}

// ListAll lista todos los movimientos del libro, el más reciente primero (exportes).
func (r *StockMovementRepo) ListAll() ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, amount, date, description
		FROM stock_movements
		ORDER BY date DESC, id DESC`
	return r.queryMovements(query)
}

// CountByProduct cuenta los movimientos asociados a un producto (guarda de borrado).
func (r *StockMovementRepo) CountByProduct(productID int64) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM stock_movements WHERE product_id = ?`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return n, nil
}

func (r *StockMovementRepo) queryMovements(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var (
			m           entity.StockMovement
			date        string
			description sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Amount, &date, &description); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		ts, err := parseTime(date)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		m.Date = ts
		m.Description = fromNull(description)
		list = append(list, &m)
	}
	return list, rows.Err()
}
