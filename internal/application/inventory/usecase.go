package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// MovementUseCase registra movimientos de stock (IN/OUT) de forma transaccional
// y consulta el libro. Es el único lugar que escribe Product.Quantity: así la
// cantidad cacheada y el libro no pueden divergir.
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// MovementInput entrada para registrar un movimiento de stock.
type MovementInput struct {
	ProductID   int64
	Type        string // IN u OUT
	Amount      int64  // > 0
	Description string
}

// RegisterMovement valida y aplica un movimiento dentro de UNA transacción:
// lee la cantidad actual, la verifica (OUT nunca deja stock negativo), la
// actualiza y agrega la entrada al libro con el timestamp actual. Toda falla
// de validación aborta sin escritura parcial.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) error {
	if input.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if input.Type != entity.MovementTypeIN && input.Type != entity.MovementTypeOUT {
		return domain.ErrInvalidInput
	}

	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// La lectura de la cantidad ocurre dentro de la tx: SQLite serializa
		// escritores, así que no hay lost update entre leer y escribir.
		product, err := productRepo.GetByID(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.Quantity + input.Amount
		if input.Type == entity.MovementTypeOUT {
			if product.Quantity < input.Amount {
				return domain.ErrInsufficientStock
			}
			newQty = product.Quantity - input.Amount
		}

		if err := productRepo.UpdateQuantity(input.ProductID, newQty); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			ProductID:   input.ProductID,
			Type:        input.Type,
			Amount:      input.Amount,
			Date:        now,
			Description: input.Description,
		})
	})
}

// StockIn conveniencia para una entrada de stock.
func (uc *MovementUseCase) StockIn(ctx context.Context, productID, amount int64, description string) error {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID:   productID,
		Type:        entity.MovementTypeIN,
		Amount:      amount,
		Description: description,
	})
}

// StockOut conveniencia para una salida de stock.
func (uc *MovementUseCase) StockOut(ctx context.Context, productID, amount int64, description string) error {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID:   productID,
		Type:        entity.MovementTypeOUT,
		Amount:      amount,
		Description: description,
	})
}

// ListByProduct lista los movimientos de un producto, el más reciente primero.
// Falla con ErrNotFound si el producto no existe.
func (uc *MovementUseCase) ListByProduct(productID int64) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			Type:        m.Type,
			Amount:      m.Amount,
			Date:        m.Date,
			Description: m.Description,
		})
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *MovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) error {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID:   in.ProductID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
	})
}
