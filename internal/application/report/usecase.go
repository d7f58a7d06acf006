package report

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// ReportUseCase genera exportes del inventario (XLSX y PDF) a partir del
// catálogo y del libro de movimientos. Respeta la preferencia product_sort.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	settingRepo repository.SettingRepository
	exporter    InventoryExporter
	pdfGen      InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	settingRepo repository.SettingRepository,
	exporter InventoryExporter,
	pdfGen InventoryPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo: productRepo,
		movRepo:     movRepo,
		settingRepo: settingRepo,
		exporter:    exporter,
		pdfGen:      pdfGen,
	}
}

// ExportXLSX genera el XLSX con una hoja de productos y una de movimientos.
func (uc *ReportUseCase) ExportXLSX() ([]byte, error) {
	products, err := uc.productRepo.List("", uc.sortPreference())
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportInventory(products, movements)
}

// ExportPDF genera el reporte PDF del catálogo con sus cantidades actuales.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List("", uc.sortPreference())
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateInventoryPDF(ctx, products, time.Now())
}

func (uc *ReportUseCase) sortPreference() string {
	sort := entity.SortNameAsc
	if s, err := uc.settingRepo.Get(entity.SettingProductSort); err == nil && s != nil {
		sort = s.Value
	}
	return sort
}
