package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpRouter "github.com/jhoicas/inventario-local/internal/interfaces/http"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// RequestLogger asigna un request id por petición y GetRequestID lo recupera
// desde cualquier handler posterior.
func TestRequestLogger_AsignaRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(httpRouter.RequestLogger(logger.New(logger.Config{Level: "error"})))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": httpRouter.GetRequestID(c)})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.RequestID)
	_, err = uuid.Parse(body.RequestID)
	assert.NoError(t, err, "el request id debe ser un UUID")
}

// Sin el middleware no hay request id: GetRequestID devuelve cadena vacía.
func TestGetRequestID_SinMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(httpRouter.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	buf := make([]byte, 16)
	n, _ := resp.Body.Read(buf)
	assert.Zero(t, n, "cuerpo vacío sin middleware")
}
