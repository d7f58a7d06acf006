package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite (usable con DB o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar DB o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, category, quantity, location, note, created_at, expiry_date`

// Create persiste un nuevo producto y asigna el ID generado por la base.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (code, name, category, quantity, location, note, created_at, expiry_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(context.Background(), query,
		product.Code, product.Name, nullable(product.Category), product.Quantity,
		nullable(product.Location), nullable(product.Note),
		formatTime(product.CreatedAt), nullable(product.ExpiryDate),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	product.ID = id
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	p, err := scanProduct(r.q.QueryRowContext(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByCode obtiene un producto por su código único. Devuelve nil si no existe.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = ?`
	p, err := scanProduct(r.q.QueryRowContext(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. No permite modificar Quantity ni CreatedAt
// (la cantidad se maneja vía movimientos; la fecha de creación es inmutable).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET code = ?, name = ?, category = ?, location = ?, note = ?, expiry_date = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(context.Background(), query,
		product.Code, product.Name, nullable(product.Category),
		nullable(product.Location), nullable(product.Note), nullable(product.ExpiryDate),
		product.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity actualiza solo el stock cacheado (usado por el motor de movimientos).
func (r *ProductRepo) UpdateQuantity(id int64, quantity int64) error {
	res, err := r.q.ExecContext(context.Background(),
		`UPDATE products SET quantity = ? WHERE id = ?`, quantity, id)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update quantity rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con filtro opcional por código o nombre y orden según la
// preferencia persistida. El LIKE de SQLite es case-insensitive para ASCII, que
// es el comportamiento elegido para la búsqueda.
func (r *ProductRepo) List(search, sort string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if search != "" {
		query += ` WHERE code LIKE ? OR name LIKE ?`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY ` + orderClause(sort)

	rows, err := r.q.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. La protección por movimientos asociados
// vive en el caso de uso; aquí solo se borra la fila.
func (r *ProductRepo) Delete(id int64) error {
	res, err := r.q.ExecContext(context.Background(), `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// orderClause mapea la preferencia product_sort a un ORDER BY fijo.
// Valores desconocidos caen en name_asc (el default de la aplicación).
func orderClause(sort string) string {
	switch sort {
	case entity.SortNameDesc:
		return "name COLLATE NOCASE DESC"
	case entity.SortDateAsc:
		return "created_at ASC"
	case entity.SortDateDesc:
		return "created_at DESC"
	default:
		return "name COLLATE NOCASE ASC"
	}
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var (
		p         entity.Product
		category  sql.NullString
		location  sql.NullString
		note      sql.NullString
		expiry    sql.NullString
		createdAt string
	)
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &category, &p.Quantity,
		&location, &note, &createdAt, &expiry); err != nil {
		return nil, err
	}
	ts, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	p.Category = fromNull(category)
	p.Location = fromNull(location)
	p.Note = fromNull(note)
	p.ExpiryDate = fromNull(expiry)
	p.CreatedAt = ts
	return &p, nil
}
