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

	appanalytics "github.com/jhoicas/easypalm-console/internal/application/analytics"
	"github.com/jhoicas/easypalm-console/internal/application/auth"
	"github.com/jhoicas/easypalm-console/internal/application/usecase"
	"github.com/jhoicas/easypalm-console/internal/domain/menu"
	"github.com/jhoicas/easypalm-console/internal/domain/repository"
	"github.com/jhoicas/easypalm-console/internal/infrastructure/backend"
	"github.com/jhoicas/easypalm-console/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/easypalm-console/internal/infrastructure/pdf"
	"github.com/jhoicas/easypalm-console/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/easypalm-console/internal/interfaces/http"
	"github.com/jhoicas/easypalm-console/pkg/config"
	"github.com/jhoicas/easypalm-console/pkg/logger"
)

//go:generate go tool swag init --dir ../.. --generalInfo cmd/api/main.go --parseInternal --outputTypes json --output ../../docs

// @title        EasyPalm Console API
// @version      1.0
// @description  Backend-for-frontend de la consola de EasyPalm: sesiones, menú por rol y acceso al backend de compras, bodega y ventas.
// @BasePath     /
// @schemes      http https

// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>

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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	sessions, closeStore := openSessionStore(ctx, cfg, log)
	defer closeStore()

	layout, err := menu.ParseAdminLayout(cfg.Menu.AdminLayout)
	if err != nil {
		log.Warn().Err(err).Msg("layout de menú del Admin inválido, se usa el extendido")
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	// Ciclo del reporte por sesión: se libera en logout o al vencer la sesión.
	profitLossRegistry := appanalytics.NewProfitLossRegistry(client, cfg.Backend.Timeout, log)
	// Sesiones abandonadas sin logout: su ciclo se libera al superar la vida del token.
	sessionTTL := time.Duration(cfg.JWT.Expiration) * time.Minute
	profitLossRegistry.StartJanitor(ctx, 5*time.Minute, sessionTTL)

	authUC := auth.NewAuthUseCase(client, sessions, menu.NewResolver(layout), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log, profitLossRegistry)

	productUC := usecase.NewProductUseCase(client, cfg.App.Locale)
	farmerUC := usecase.NewFarmerUseCase(client)
	industryUC := usecase.NewIndustryUseCase(client)
	stockUC := usecase.NewStockUseCase(client)
	employeeUC := usecase.NewEmployeeUseCase(client)
	warehouseUC := usecase.NewWarehouseUseCase(client)
	orderUC := usecase.NewOrderUseCase(client)
	dashboardUC := appanalytics.NewDashboardUseCase(client, time.Now)
	executiveUC := appanalytics.NewExecutiveDashboardUseCase(client, time.Now)

	// PDF: exportación del reporte de pérdidas y ganancias
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Locale)
	profitLossUC := appanalytics.NewProfitLossUseCase(profitLossRegistry, pdfGenerator, cfg.App.Locale)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
		ProxyHeader:  cfg.HTTP.ProxyHeader,
	})
	app.Use(httpRouter.RequestLogger(log))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.DocsPath != "" {
		if _, err := os.Stat(cfg.App.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.DocsPath,
				Path:     "docs",
				Title:    "EasyPalm Console API",
			}))
		} else {
			log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		FarmerUC:     farmerUC,
		IndustryUC:   industryUC,
		StockUC:      stockUC,
		EmployeeUC:   employeeUC,
		WarehouseUC:  warehouseUC,
		OrderUC:      orderUC,
		DashboardUC:  dashboardUC,
		ExecutiveUC:  executiveUC,
		ProfitLossUC: profitLossUC,
		JWTSecret:    cfg.JWT.Secret,
		LoginRPS:     cfg.RateLimit.LoginRPS,
		LoginBurst:   cfg.RateLimit.LoginBurst,
		Log:          log,
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

	log.Info().Int("reportes_abiertos", profitLossRegistry.Len()).Msg("aplicación detenida")
}

// openSessionStore memoria (desarrollo, una sola instancia) o PostgreSQL (sesiones
// compartidas entre réplicas y persistentes a reinicios).
func openSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionRepository, func()) {
	if cfg.Session.Store != "postgres" {
		log.Info().Msg("sesiones en memoria")
		return memory.NewSessionRepository(), func() {}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	repo := postgres.NewSessionRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("crear tabla de sesiones")
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("sesiones en PostgreSQL")
	return repo, pool.Close
}
