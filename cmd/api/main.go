package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/domain/repository"
	"github.com/jhoicas/lager-api/internal/infrastructure/memory"
	"github.com/jhoicas/lager-api/internal/infrastructure/metrics"
	"github.com/jhoicas/lager-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/lager-api/internal/interfaces/http"
	"github.com/jhoicas/lager-api/pkg/config"
	"github.com/jhoicas/lager-api/pkg/logger"

	_ "github.com/jhoicas/lager-api/docs"
)

// @title                      Lager API
// @version                    1.0
// @description                Inventario: usuarios, categorías y productos.
// @BasePath                   /
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.Expiration <= 0 {
		log.Warn().Msg("JWT_EXPIRATION_MINUTES no configurado: los tokens de sesión no expiran")
	}

	ctx := context.Background()
	var (
		userRepo     repository.UserRepository
		categoryRepo repository.CategoryRepository
		productRepo  repository.ProductRepository
	)
	switch cfg.DB.Driver {
	case "memory":
		categories := memory.NewCategoryStore()
		userRepo = memory.NewUserStore()
		categoryRepo = categories
		productRepo = memory.NewProductStore(categories)
		log.Warn().Msg("almacén en memoria: los datos se pierden al detener el proceso")
	default:
		if cfg.DB.AutoMigrate {
			if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		userRepo = postgres.NewUserRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
	}

	m := metrics.New()
	hasher := auth.NewBcryptHasher(cfg.Auth.HashCost, cfg.Auth.HashConcurrency)
	authUC := auth.NewAuthUseCase(userRepo, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, m)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, log, m, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo),
		ProductUC:  usecase.NewProductUseCase(productRepo),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lager API",
	}))

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
