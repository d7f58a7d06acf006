package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain"
)

// SettingHandler maneja las peticiones HTTP de preferencias clave/valor.
type SettingHandler struct {
	uc *usecase.SettingUseCase
}

// NewSettingHandler construye el handler.
func NewSettingHandler(uc *usecase.SettingUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

// Get maneja GET /api/settings/:key con default opcional ?default=.
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	value, err := h.uc.Get(key, c.Query("default"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clave requerida"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.SettingResponse{Key: key, Value: value})
}

// Set maneja PUT /api/settings/:key (upsert).
func (h *SettingHandler) Set(c *fiber.Ctx) error {
	key := c.Params("key")
	var in dto.SetSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Set(key, in.Value); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clave o valor inválido"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.SettingResponse{Key: key, Value: in.Value})
}
