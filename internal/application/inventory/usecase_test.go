package inventory_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-local/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	db          *sql.DB
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	uc          *inventory.MovementUseCase
}

// newTestEnv levanta una base temporal con repos reales y el caso de uso cableado.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, config.DBConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.InitSchema(ctx, db))

	productRepo := sqlite.NewProductRepository(db)
	movRepo := sqlite.NewStockMovementRepository(db)
	return &testEnv{
		db:          db,
		productRepo: productRepo,
		movRepo:     movRepo,
		uc:          inventory.NewMovementUseCase(sqlite.NewTxRunner(db), productRepo, movRepo),
	}
}

func (e *testEnv) createProduct(t *testing.T, code string) *entity.Product {
	t.Helper()
	p := &entity.Product{Code: code, Name: "Producto " + code, CreatedAt: time.Now()}
	require.NoError(t, e.productRepo.Create(p))
	return p
}

func (e *testEnv) quantity(t *testing.T, id int64) int64 {
	t.Helper()
	p, err := e.productRepo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

// ledgerSum suma el libro (IN positivo, OUT negativo) para verificar que la
// cantidad cacheada nunca diverge del historial.
func (e *testEnv) ledgerSum(t *testing.T, id int64) int64 {
	t.Helper()
	list, err := e.movRepo.ListByProduct(id)
	require.NoError(t, err)
	var sum int64
	for _, m := range list {
		if m.Type == entity.MovementTypeIN {
			sum += m.Amount
		} else {
			sum -= m.Amount
		}
	}
	return sum
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Ciclo de vida completo: alta, entrada, salida insuficiente rechazada, salida
// que deja el stock en cero. La cantidad cacheada y el libro van de la mano en
// cada paso.
func TestMovementUseCase_CicloCompleto(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, "A1")

	// Entrada inicial de 10
	require.NoError(t, env.uc.StockIn(ctx, p.ID, 10, "stock inicial"))
	assert.Equal(t, int64(10), env.quantity(t, p.ID))
	assert.Equal(t, int64(10), env.ledgerSum(t, p.ID))

	// Sacar 12 con 10 disponibles debe fallar sin tocar nada
	err := env.uc.StockOut(ctx, p.ID, 12, "venta grande")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), env.quantity(t, p.ID), "el stock no cambia ante un rechazo")
	count, err := env.movRepo.CountByProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "el rechazo no deja entrada en el libro")

	// Sacar exactamente lo disponible es válido y deja el stock en cero
	require.NoError(t, env.uc.StockOut(ctx, p.ID, 10, "venta total"))
	assert.Equal(t, int64(0), env.quantity(t, p.ID))
	assert.Equal(t, int64(0), env.ledgerSum(t, p.ID))

	// Con stock en cero cualquier salida se rechaza
	err = env.uc.StockOut(ctx, p.ID, 1, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Montos cero o negativos se rechazan antes de tocar la base.
func TestMovementUseCase_MontoInvalido(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, "A1")

	for _, amount := range []int64{0, -5} {
		err := env.uc.RegisterMovement(ctx, inventory.MovementInput{
			ProductID: p.ID,
			Type:      entity.MovementTypeIN,
			Amount:    amount,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "monto %d", amount)
	}

	count, err := env.movRepo.CountByProduct(p.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, env.quantity(t, p.ID))
}

// Solo IN y OUT son tipos de movimiento válidos.
func TestMovementUseCase_TipoInvalido(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, "A1")

	err := env.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: p.ID,
		Type:      "TRANSFER",
		Amount:    5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Movimientos sobre productos inexistentes fallan con ErrNotFound.
func TestMovementUseCase_ProductoInexistente(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.uc.StockIn(ctx, 999, 5, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.uc.ListByProduct(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El listado devuelve el movimiento más reciente primero y el total correcto.
func TestMovementUseCase_ListByProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, "A1")

	require.NoError(t, env.uc.StockIn(ctx, p.ID, 10, "compra"))
	require.NoError(t, env.uc.StockOut(ctx, p.ID, 3, "venta"))

	resp, err := env.uc.ListByProduct(p.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, entity.MovementTypeOUT, resp.Items[0].Type, "el más reciente primero")
	assert.Equal(t, "venta", resp.Items[0].Description)
	assert.Equal(t, "compra", resp.Items[1].Description)
}

// Varios movimientos intercalados: la cantidad siempre es igual a la suma del libro.
func TestMovementUseCase_CantidadIgualASumaDelLibro(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, "A1")

	steps := []struct {
		typ    string
		amount int64
	}{
		{entity.MovementTypeIN, 7},
		{entity.MovementTypeIN, 5},
		{entity.MovementTypeOUT, 4},
		{entity.MovementTypeIN, 2},
		{entity.MovementTypeOUT, 10},
	}
	for _, s := range steps {
		require.NoError(t, env.uc.RegisterMovement(ctx, inventory.MovementInput{
			ProductID: p.ID,
			Type:      s.typ,
			Amount:    s.amount,
		}))
		assert.Equal(t, env.ledgerSum(t, p.ID), env.quantity(t, p.ID))
	}
	assert.Equal(t, int64(0), env.quantity(t, p.ID))
}
