package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/report"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SettingUC  *usecase.SettingUseCase
	MovementUC *inventory.MovementUseCase
	ReportUC   *report.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements
	movementHandler := NewMovementHandler(deps.MovementUC)
	products.Get("/:id/movements", movementHandler.ListByProduct)
	invGroup := api.Group("/inventory")
	invGroup.Post("/movements", movementHandler.Register)

	// Settings
	settings := api.Group("/settings")
	settingHandler := NewSettingHandler(deps.SettingUC)
	settings.Get("/:key", settingHandler.Get)
	settings.Put("/:key", settingHandler.Set)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.xlsx", reportHandler.ExportXLSX)
	reports.Get("/inventory.pdf", reportHandler.ExportPDF)
}
