package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de preferencias clave/valor sobre SQLite.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador. Pasar DB o tx (Querier).
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// Get obtiene una preferencia por clave. Devuelve nil si no existe.
func (r *SettingRepo) Get(key string) (*entity.Setting, error) {
	var s entity.Setting
	err := r.q.QueryRowContext(context.Background(),
		`SELECT key, value FROM settings WHERE key = ?`, key,
	).Scan(&s.Key, &s.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza el valor de una clave.
func (r *SettingRepo) Upsert(setting *entity.Setting) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	_, err := r.q.ExecContext(context.Background(), query, setting.Key, setting.Value)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}
