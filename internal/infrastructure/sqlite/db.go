package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // driver embebido puro Go

	"github.com/jhoicas/inventario-local/pkg/config"
)

// Open abre (o crea) la base de datos SQLite de la aplicación.
// Un solo handle de larga vida con MaxOpenConns=1: SQLite admite un único
// escritor y la app es mono-usuario, así se evita SQLITE_BUSY por completo.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		cfg.Path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}
	return db, nil
}

// InitSchema crea las tablas si no existen (arranque idempotente).
// Los timestamps se guardan como texto RFC 3339: ordenan lexicográficamente,
// lo que permite ORDER BY directo sobre created_at y date.
func InitSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			code        TEXT UNIQUE NOT NULL,
			name        TEXT NOT NULL,
			category    TEXT,
			quantity    INTEGER NOT NULL DEFAULT 0,
			location    TEXT,
			note        TEXT,
			created_at  TEXT NOT NULL,
			expiry_date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS stock_movements (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id  INTEGER NOT NULL REFERENCES products(id),
			type        TEXT NOT NULL,
			amount      INTEGER NOT NULL,
			date        TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_movements_product
			ON stock_movements(product_id)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
