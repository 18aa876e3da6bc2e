package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marchand/boutique-api/internal/application/analytics"
	"github.com/marchand/boutique-api/internal/application/auth"
	appcontent "github.com/marchand/boutique-api/internal/application/content"
	"github.com/marchand/boutique-api/internal/application/inventory"
	"github.com/marchand/boutique-api/internal/application/usecase"
	"github.com/marchand/boutique-api/internal/domain/entity"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	CollectionUC *usecase.CollectionUseCase
	CustomerUC   *usecase.CustomerUseCase
	MediaUC      *usecase.MediaUseCase
	SectionUC    *appcontent.SectionUseCase
	InventoryUC  *inventory.UseCase
	DashboardUC  *analytics.DashboardUseCase
	ReportUC     *analytics.ReportUseCase
	JWTSecret    string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login public, le reste protégé)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produits
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Catégories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Collections
	collections := protected.Group("/collections")
	collectionHandler := NewCollectionHandler(deps.CollectionUC)
	collections.Get("/", collectionHandler.List)
	collections.Post("/", collectionHandler.Create)
	collections.Put("/:id", collectionHandler.Update)
	collections.Delete("/:id", collectionHandler.Delete)

	// Sections de la page d'accueil
	sectionHandler := NewSectionHandler(deps.SectionUC)
	sections := protected.Group("/content/home-sections")
	sections.Get("/", sectionHandler.List)
	sections.Post("/", sectionHandler.Create)
	sections.Put("/", sectionHandler.Reorder)
	sections.Get("/:id", sectionHandler.GetByID)
	sections.Patch("/:id", sectionHandler.Update)
	sections.Delete("/:id", sectionHandler.Delete)
	sections.Post("/:id/duplicate", sectionHandler.Duplicate)
	sections.Patch("/:id/visibility", sectionHandler.ToggleVisibility)

	// Éditeur du carrousel d'une section collection
	sectionCollections := protected.Group("/content/home-section")
	sectionCollections.Get("/:id/collections", sectionHandler.GetCollectionItems)
	sectionCollections.Put("/:id/collections", sectionHandler.PutCollectionItems)

	// Inventaire
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReportUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Patch("/stock", inventoryHandler.SetStock)
	invGroup.Get("/alerts", inventoryHandler.Alerts)
	invGroup.Get("/report", inventoryHandler.StockReport)

	// Médiathèque
	mediaHandler := NewMediaHandler(deps.MediaUC)
	protected.Post("/upload", mediaHandler.Upload)
	protected.Delete("/upload/:id", mediaHandler.Delete)
	protected.Get("/media", mediaHandler.List)

	// Tableau de bord
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/analytics/dashboard", dashboardHandler.Summary)

	// Clients
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
}
