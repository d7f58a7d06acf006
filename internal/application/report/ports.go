package report

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// InventoryExporter puerto para generar el archivo XLSX del inventario.
type InventoryExporter interface {
	ExportInventory(products []*entity.Product, movements []*entity.StockMovement) ([]byte, error)
}

// InventoryPDFGenerator puerto para la representación PDF del inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}
