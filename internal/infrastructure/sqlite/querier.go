package sqlite

import (
	"context"
	"database/sql"
)

// Querier abstrae *sql.DB y *sql.Tx para que los repositorios funcionen
// igual con el handle directo o dentro de una transacción.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
