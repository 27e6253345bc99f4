package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/invoice-studio/internal/application/usecase"
	"github.com/tu-usuario/invoice-studio/internal/infrastructure/memory"
	"github.com/tu-usuario/invoice-studio/internal/infrastructure/notify"
	infrapdf "github.com/tu-usuario/invoice-studio/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/invoice-studio/internal/interfaces/http"
	"github.com/tu-usuario/invoice-studio/pkg/config"
	"github.com/tu-usuario/invoice-studio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Almacenes en memoria: el estado vive lo que vive el proceso (sin persistencia).
	docRepo := memory.NewDocumentRepository()
	presetRepo := memory.NewPresetRepository()

	notifier := notify.NewLogNotifier(log)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	documentUC := usecase.NewDocumentUseCase(docRepo, usecase.DocumentDefaults{
		Currency:        cfg.Invoice.DefaultCurrency,
		SeedDescription: cfg.Invoice.SeedDescription,
	})
	presetUC := usecase.NewPresetUseCase(presetRepo, docRepo, notifier)
	pdfUC := usecase.NewPDFUseCase(docRepo, pdfGenerator, notifier)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice Studio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DocumentUC: documentUC,
		PresetUC:   presetUC,
		PDFUC:      pdfUC,
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
