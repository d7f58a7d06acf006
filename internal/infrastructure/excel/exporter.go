package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-local/internal/application/report"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

var _ report.InventoryExporter = (*Exporter)(nil)

// Nombres de las hojas del archivo exportado.
const (
	sheetProducts  = "Productos"
	sheetMovements = "Movimientos"
)

// Exporter genera el XLSX del inventario usando excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportInventory arma un libro con dos hojas: el catálogo con cantidades
// actuales y el libro completo de movimientos. Devuelve los bytes del archivo.
func (e *Exporter) ExportInventory(products []*entity.Product, movements []*entity.StockMovement) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// La hoja por defecto pasa a ser la de productos.
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, sheetProducts); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	header := []interface{}{"id", "code", "name", "category", "quantity", "location", "note", "expiry_date", "created_at"}
	if err := f.SetSheetRow(sheetProducts, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: encabezado de productos: %w", err)
	}
	row := 2
	for _, p := range products {
		excelRow := []interface{}{
			p.ID, p.Code, p.Name, p.Category, p.Quantity,
			p.Location, p.Note, p.ExpiryDate,
			p.CreatedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de producto: %w", err)
		}
		if err := f.SetSheetRow(sheetProducts, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: fila de producto: %w", err)
		}
		row++
	}

	if _, err := f.NewSheet(sheetMovements); err != nil {
		return nil, fmt.Errorf("excel: hoja de movimientos: %w", err)
	}
	movHeader := []interface{}{"id", "product_id", "type", "amount", "date", "description"}
	if err := f.SetSheetRow(sheetMovements, "A1", &movHeader); err != nil {
		return nil, fmt.Errorf("excel: encabezado de movimientos: %w", err)
	}
	row = 2
	for _, m := range movements {
		excelRow := []interface{}{
			m.ID, m.ProductID, m.Type, m.Amount,
			m.Date.Format(time.RFC3339), m.Description,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de movimiento: %w", err)
		}
		if err := f.SetSheetRow(sheetMovements, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: fila de movimiento: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}
