package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/excel"
)

// El archivo generado debe poder reabrirse y contener las dos hojas con los
// datos en las celdas esperadas.
func TestExporter_ExportInventory(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	products := []*entity.Product{
		{ID: 1, Code: "A1", Name: "Widget", Category: "general", Quantity: 7, CreatedAt: now},
		{ID: 2, Code: "B2", Name: "Tornillo", Quantity: 0, CreatedAt: now},
	}
	movements := []*entity.StockMovement{
		{ID: 1, ProductID: 1, Type: entity.MovementTypeIN, Amount: 7, Date: now, Description: "compra"},
	}

	data, err := excel.NewExporter().ExportInventory(products, movements)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Productos", "Movimientos"}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	// Encabezado y primera fila de productos
	assert.Equal(t, "code", cell("Productos", "B1"))
	assert.Equal(t, "A1", cell("Productos", "B2"))
	assert.Equal(t, "Widget", cell("Productos", "C2"))
	assert.Equal(t, "7", cell("Productos", "E2"))
	assert.Equal(t, "Tornillo", cell("Productos", "C3"))

	// Hoja de movimientos
	assert.Equal(t, "type", cell("Movimientos", "C1"))
	assert.Equal(t, "IN", cell("Movimientos", "C2"))
	assert.Equal(t, "7", cell("Movimientos", "D2"))
	assert.Equal(t, "compra", cell("Movimientos", "F2"))
}

// Un inventario vacío igual produce un libro válido con solo encabezados.
func TestExporter_InventarioVacio(t *testing.T) {
	data, err := excel.NewExporter().ExportInventory(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Productos")
	require.NoError(t, err)
	require.Len(t, rows, 1, "solo la fila de encabezado")
	assert.Equal(t, "id", rows[0][0])
}
