package sqlite

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isUniqueViolation verifica si un error es una violación de constraint UNIQUE (2067).
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// timeLayout es RFC 3339 con nanosegundos de ancho fijo: los ceros finales se
// conservan para que las cadenas guardadas ordenen lexicográficamente en orden
// cronológico (RFC3339Nano los recorta y rompe el ORDER BY sobre texto).
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime serializa un timestamp en UTC con ancho fijo.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime deserializa un timestamp RFC 3339 guardado por formatTime.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// nullable convierte "" en NULL para columnas de texto opcionales.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// fromNull devuelve "" para NULL en columnas de texto opcionales.
func fromNull(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
