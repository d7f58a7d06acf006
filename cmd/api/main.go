package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/report"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	infraexcel "github.com/jhoicas/inventario-local/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/inventario-local/internal/interfaces/http"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base SQLite")
	}
	defer db.Close()

	if err := sqlite.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	productRepo := sqlite.NewProductRepository(db)
	movementRepo := sqlite.NewStockMovementRepository(db)
	settingRepo := sqlite.NewSettingRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	productUC := usecase.NewProductUseCase(productRepo, movementRepo, settingRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, productRepo, movementRepo)
	reportUC := report.NewReportUseCase(
		productRepo, movementRepo, settingRepo,
		infraexcel.NewExporter(), infrapdf.NewMarotoReportGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		SettingUC:  settingUC,
		MovementUC: movementUC,
		ReportUC:   reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
