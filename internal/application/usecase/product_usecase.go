package usecase

import (
	"time"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity se maneja vía movimientos.
type ProductUseCase struct {
	repo        repository.ProductRepository
	movements   repository.StockMovementRepository
	settingRepo repository.SettingRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	movements repository.StockMovementRepository,
	settingRepo repository.SettingRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, movements: movements, settingRepo: settingRepo}
}

// Create crea un nuevo producto. No inserta movimiento de apertura: si se
// quiere saldo inicial con rastro en el libro, registrar un IN aparte.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}
	product := &entity.Product{
		Code:       in.Code,
		Name:       in.Name,
		Category:   in.Category,
		Quantity:   in.Quantity,
		Location:   in.Location,
		Note:       in.Note,
		CreatedAt:  time.Now(),
		ExpiryDate: in.ExpiryDate,
	}
	// El índice UNIQUE de code respalda el chequeo anterior ante carreras.
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica un patch sobre un producto: solo los campos presentes se
// sobreescriben. Un patch vacío es un no-op. Falla con ErrNotFound si el ID
// no existe (no hay no-op silencioso sobre filas inexistentes).
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	changed := false
	if in.Code != nil && *in.Code != product.Code {
		if *in.Code == "" {
			return nil, domain.ErrInvalidInput
		}
		other, err := uc.repo.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicateCode
		}
		product.Code = *in.Code
		changed = true
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
		changed = true
	}
	if in.Category != nil {
		product.Category = *in.Category
		changed = true
	}
	if in.Location != nil {
		product.Location = *in.Location
		changed = true
	}
	if in.Note != nil {
		product.Note = *in.Note
		changed = true
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = *in.ExpiryDate
		changed = true
	}
	if !changed {
		return toProductResponse(product), nil
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda opcional por código o nombre. El orden sale
// de la preferencia product_sort (default name_asc; valores desconocidos caen ahí).
func (uc *ProductUseCase) List(search string) (*dto.ProductListResponse, error) {
	sort := entity.SortNameAsc
	if s, err := uc.settingRepo.Get(entity.SettingProductSort); err == nil && s != nil {
		sort = s.Value
	}
	list, err := uc.repo.List(search, sort)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto. Bloqueado con ErrHasMovements si el libro tiene
// entradas para él: borrar rompería el historial.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movements.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasMovements
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		Category:   p.Category,
		Quantity:   p.Quantity,
		Location:   p.Location,
		Note:       p.Note,
		ExpiryDate: p.ExpiryDate,
		CreatedAt:  p.CreatedAt,
	}
}
