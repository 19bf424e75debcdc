package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fullerpub/barstock-api/internal/application/auth"
	"github.com/fullerpub/barstock-api/internal/application/inventory"
	"github.com/fullerpub/barstock-api/internal/application/usecase"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProfileUC   *usecase.ProfileUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.UseCase
	ExportUC    *inventory.ExportUseCase
	StatsUC     *usecase.StatsUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", profileHandler.Me)

	// Carta agrupada y edición de stock: el gatekeeper decide dentro del
	// caso de uso, no en el router, para que staff pueda llegar al endpoint.
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Get("/catalog", inventoryHandler.Catalog)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id/stock", inventoryHandler.UpdateStock)

	// Export del stock (cualquier usuario autenticado)
	exportGroup := protected.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup.Get("/csv", exportHandler.CSV)
	exportGroup.Get("/pdf", exportHandler.PDF)

	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.Snapshot)

	// Panel admin: CRUD de catálogo y gestión de perfiles
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Delete("/:id", categoryHandler.Delete)

	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)

	profiles := admin.Group("/profiles")
	profiles.Get("/", profileHandler.List)
	profiles.Put("/:id", profileHandler.Update)
}
