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

	"github.com/jhoicas/muebleria-pos/internal/application/auth"
	"github.com/jhoicas/muebleria-pos/internal/application/billing"
	"github.com/jhoicas/muebleria-pos/internal/application/inventory"
	"github.com/jhoicas/muebleria-pos/internal/application/reconciler"
	"github.com/jhoicas/muebleria-pos/internal/application/reports"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/muebleria-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/muebleria-pos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/muebleria-pos/internal/interfaces/http"
	"github.com/jhoicas/muebleria-pos/pkg/config"
	"github.com/jhoicas/muebleria-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	gateway := postgres.NewGateway(pool, log)
	listener := postgres.NewListener(cfg.DB, cfg.Feed, log)

	st := store.New()
	recon := reconciler.New(st, gateway, log)
	sessions := auth.NewSessionManager(st, gateway, listener, recon, cfg.Session, log)
	loginUC := auth.NewLoginUseCase(cfg.Auth, sessions, log)

	catalogUC := inventory.NewCatalogUseCase(st, gateway.Products, gateway.Variations, log)
	categoryUC := inventory.NewCategoryUseCase(st, gateway.Categories, log)
	saleUC := billing.NewCommitSaleUseCase(st, gateway.Bills, gateway.Variations, log)
	purchaseUC := billing.NewCommitPurchaseUseCase(st, gateway.Purchases, gateway.Variations, log)
	reportsUC := reports.New(st)

	receiptGen := infrapdf.NewReceiptGenerator(cfg.App.Name)
	exporter := excel.NewExporter()

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
		Title:    "Mueblería POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:      st,
		Sessions:   sessions,
		Login:      loginUC,
		Bootstrap:  gateway,
		Catalog:    catalogUC,
		Categories: categoryUC,
		Sale:       saleUC,
		Purchase:   purchaseUC,
		Reports:    reportsUC,
		Receipt:    receiptGen,
		Exporter:   exporter,
		JWTSecret:  cfg.Auth.JWTSecret,
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
