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

	"github.com/marchand/boutique-api/internal/application/analytics"
	"github.com/marchand/boutique-api/internal/application/auth"
	appcontent "github.com/marchand/boutique-api/internal/application/content"
	"github.com/marchand/boutique-api/internal/application/inventory"
	"github.com/marchand/boutique-api/internal/application/usecase"
	"github.com/marchand/boutique-api/internal/infrastructure/cache"
	infrapdf "github.com/marchand/boutique-api/internal/infrastructure/pdf"
	"github.com/marchand/boutique-api/internal/infrastructure/postgres"
	"github.com/marchand/boutique-api/internal/infrastructure/storage"
	httpRouter "github.com/marchand/boutique-api/internal/interfaces/http"
	"github.com/marchand/boutique-api/pkg/config"
	"github.com/marchand/boutique-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	// Cache Redis : le tableau de bord s'en passe s'il est indisponible
	var dashCache analytics.Cache
	redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis indisponible, tableau de bord sans cache")
	} else {
		dashCache = redisCache
		defer redisCache.Close()
	}

	mediaStorage, err := storage.NewLocalStorage(cfg.Media.Dir, cfg.Media.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("stockage média")
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	sectionRepo := postgres.NewHomeSectionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	collectionRepo := postgres.NewCollectionRepository(pool)
	mediaRepo := postgres.NewMediaRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	collectionUC := usecase.NewCollectionUseCase(collectionRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	mediaUC := usecase.NewMediaUseCase(mediaRepo, mediaStorage)
	sectionUC := appcontent.NewSectionUseCase(sectionRepo)
	inventoryUC := inventory.NewUseCase(productRepo, movementRepo, txRunner)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, sectionRepo, dashCache)
	reportUC := analytics.NewReportUseCase(productRepo, infrapdf.NewStockReportGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // uploads de la médiathèque
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Boutique API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Fichiers de la médiathèque servis statiquement
	app.Static(cfg.Media.BaseURL, mediaStorage.Root())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		CategoryUC:   categoryUC,
		CollectionUC: collectionUC,
		CustomerUC:   customerUC,
		MediaUC:      mediaUC,
		SectionUC:    sectionUC,
		InventoryUC:  inventoryUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("serveur HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API à l'écoute")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("arrêt en cours")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}
	log.Info().Msg("arrêt terminé")
}
