package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/report"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler maneja la descarga de exportes del inventario.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportXLSX maneja GET /api/reports/inventory.xlsx.
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	data, err := h.uc.ExportXLSX()
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportPDF maneja GET /api/reports/inventory.pdf.
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExportPDF(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("inventario_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
