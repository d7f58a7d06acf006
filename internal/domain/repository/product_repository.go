package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id int64, quantity int64) error
	List(search, sort string) ([]*entity.Product, error)
	Delete(id int64) error
}
