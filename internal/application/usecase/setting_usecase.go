package usecase

import (
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// SettingUseCase preferencias de usuario clave/valor con semántica upsert.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase construye el caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// Get devuelve el valor de una clave, o def si la clave no existe.
func (uc *SettingUseCase) Get(key, def string) (string, error) {
	if key == "" {
		return "", domain.ErrInvalidInput
	}
	s, err := uc.repo.Get(key)
	if err != nil {
		return "", err
	}
	if s == nil {
		return def, nil
	}
	return s.Value, nil
}

// Set escribe una clave (reemplaza el valor si ya existe). Para product_sort
// solo se aceptan los valores reconocidos.
func (uc *SettingUseCase) Set(key, value string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	if key == entity.SettingProductSort && !validSort(value) {
		return domain.ErrInvalidInput
	}
	return uc.repo.Upsert(&entity.Setting{Key: key, Value: value})
}

func validSort(value string) bool {
	switch value {
	case entity.SortNameAsc, entity.SortNameDesc, entity.SortDateAsc, entity.SortDateDesc:
		return true
	}
	return false
}
