package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/pkg/config"
)

// Sin variables de entorno se aplican los defaults de la app local.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventario-local", cfg.App.Name)
	assert.Equal(t, "inventario.db", cfg.DB.Path)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_DesdeEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/otra.db")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "/tmp/otra.db", cfg.DB.Path)
}

// Un puerto no numérico cae en el default, nunca en el puerto 0.
func TestLoad_PuertoInvalidoCaeEnDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "ochenta")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}
