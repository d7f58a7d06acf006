package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// SettingRepository define el puerto de persistencia para Setting (DIP).
type SettingRepository interface {
	Get(key string) (*entity.Setting, error) // nil si la clave no existe
	Upsert(setting *entity.Setting) error
}
