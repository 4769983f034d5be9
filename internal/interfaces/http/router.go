package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/muebleria-pos/internal/application/auth"
	"github.com/jhoicas/muebleria-pos/internal/application/billing"
	"github.com/jhoicas/muebleria-pos/internal/application/inventory"
	"github.com/jhoicas/muebleria-pos/internal/application/reports"
	"github.com/jhoicas/muebleria-pos/internal/application/store"
	"github.com/jhoicas/muebleria-pos/internal/infrastructure/excel"
	"github.com/jhoicas/muebleria-pos/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *store.Store
	Sessions   *auth.SessionManager
	Login      *auth.LoginUseCase
	Bootstrap  auth.Bootstrapper
	Catalog    *inventory.CatalogUseCase
	Categories *inventory.CategoryUseCase
	Sale       *billing.CommitSaleUseCase
	Purchase   *billing.CommitPurchaseUseCase
	Reports    *reports.UseCase
	Receipt    *pdf.ReceiptGenerator
	Exporter   *excel.Exporter
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.Login)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de la sesión vigente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))
	protected.Post("/auth/logout", authHandler.Logout)

	// Estado local completo
	stateHandler := NewStateHandler(deps.Store, deps.Bootstrap)
	protected.Get("/state", stateHandler.Get)
	protected.Post("/state/reload", stateHandler.Reload)

	// Catálogo: productos, variaciones, stock
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Store)
	products := protected.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Post("/", catalogHandler.CreateProduct)
	products.Put("/:id", catalogHandler.UpdateProduct)
	products.Post("/:id/variations", catalogHandler.CreateVariation)
	variations := protected.Group("/variations")
	variations.Put("/:id", catalogHandler.UpdateVariation)
	variations.Post("/:id/stock", catalogHandler.AdjustStock)

	// Categorías
	categoryHandler := NewCategoryHandler(deps.Categories, deps.Store)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/", categoryHandler.EditAll)
	categories.Delete("/:name", categoryHandler.Delete)

	// Ventas y compras
	txHandler := NewTransactionHandler(deps.Sale, deps.Purchase, deps.Store, deps.Receipt)
	sales := protected.Group("/sales")
	sales.Get("/", txHandler.ListSales)
	sales.Post("/", txHandler.CreateSale)
	sales.Get("/:id/receipt", txHandler.Receipt)
	purchases := protected.Group("/purchases")
	purchases.Get("/", txHandler.ListPurchases)
	purchases.Post("/", txHandler.CreatePurchase)

	// Reportes
	reportHandler := NewReportHandler(deps.Reports, deps.Store, deps.Exporter)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/summary", reportHandler.Summary)
	reportsGroup.Get("/export", reportHandler.Export)
}
