package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fullerpub/barstock-api/internal/application/auth"
	"github.com/fullerpub/barstock-api/internal/application/inventory"
	"github.com/fullerpub/barstock-api/internal/application/usecase"
	infrapdf "github.com/fullerpub/barstock-api/internal/infrastructure/pdf"
	"github.com/fullerpub/barstock-api/internal/infrastructure/postgres"
	"github.com/fullerpub/barstock-api/internal/interfaces/http"
	"github.com/fullerpub/barstock-api/internal/obs"
	"github.com/fullerpub/barstock-api/pkg/config"
	"github.com/fullerpub/barstock-api/pkg/logger"
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

	obs.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	resolver := auth.NewResolver(profileRepo, log)
	authUC := auth.NewAuthUseCase(accountRepo, resolver, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.RateConfig{
		PerMinute: cfg.Auth.LoginRatePerMinute,
		Burst:     cfg.Auth.LoginBurst,
	}, log)

	profileUC := usecase.NewProfileUseCase(profileRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	inventoryUC := inventory.NewUseCase(productRepo, categoryRepo)

	reportGen := infrapdf.NewMarotoStockReport()
	exportUC := inventory.NewExportUseCase(productRepo, categoryRepo, reportGen, inventory.ExportConfig{
		Filename: cfg.Export.Filename,
		Locale:   cfg.Export.Locale,
	})

	statsUC := usecase.NewStatsUseCase(productRepo, categoryRepo)
	go statsUC.StartRefresher(ctx, time.Duration(cfg.Stats.RefreshMinutes)*time.Minute, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(obs.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fuller Pub Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(obs.Handler()))

	http.Router(app, http.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		ExportUC:    exportUC,
		StatsUC:     statsUC,
		JWTSecret:   cfg.JWT.Secret,
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
