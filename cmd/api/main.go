package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/stonecrusher-api/docs"
	appanalytics "github.com/jhoicas/stonecrusher-api/internal/application/analytics"
	"github.com/jhoicas/stonecrusher-api/internal/application/audit"
	"github.com/jhoicas/stonecrusher-api/internal/application/auth"
	"github.com/jhoicas/stonecrusher-api/internal/application/inventory"
	"github.com/jhoicas/stonecrusher-api/internal/application/ledger"
	"github.com/jhoicas/stonecrusher-api/internal/application/notification"
	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
	"github.com/jhoicas/stonecrusher-api/internal/application/usecase"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/stonecrusher-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/storage"
	infraxlsx "github.com/jhoicas/stonecrusher-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/stonecrusher-api/internal/interfaces/http"
	"github.com/jhoicas/stonecrusher-api/pkg/config"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Str("tz", cfg.App.Location.String()).
		Msg("iniciando aplicación")

	// Montos como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	// Los defer de run cierran el pool antes de salir.
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("arranque fallido")
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("abrir persistencia: %w", err)
	}
	defer repos.close()

	mailer := mail.New(cfg.Mail, log)
	files, err := storage.NewDiskStore(cfg.App.UploadsDir)
	if err != nil {
		return fmt.Errorf("directorio de adjuntos: %w", err)
	}

	// Auth
	tokens := auth.NewTokenService(auth.JWTConfig{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
		ResetTTL:      cfg.JWT.ResetTTL,
		Issuer:        cfg.JWT.Issuer,
	}, repos.users)
	authUC := auth.NewAuthUseCase(repos.users, tokens, mailer, cfg.App.FrontendURL)

	// En memoria no hay cmd/seed: se siembran las cuentas al arrancar.
	if cfg.App.StorageDriver == "memory" {
		n, err := authUC.Seed(ctx, auth.DefaultAccounts)
		if err != nil {
			return fmt.Errorf("seed de usuarios: %w", err)
		}
		log.Info().Int("created", n).Msg("usuarios de desarrollo sembrados")
	}

	// Auditoría y alertas
	recorder := audit.NewRecorder(repos.auditLogs, log)
	alerts := notification.NewService(
		repos.notifications, repos.stock, repos.ledger, repos.analytics, repos.users, mailer,
		notification.Config{LowStockThreshold: cfg.Alerts.LowStockThreshold, Location: cfg.App.Location},
		log,
	)

	// Pipelines de escritura
	operationsUC := inventory.NewUseCase(repos.tx, inventory.Repos{
		Materials:  repos.materials,
		Trucks:     repos.trucks,
		Vendors:    repos.vendors,
		Stock:      repos.stock,
		Production: repos.production,
		Dispatch:   repos.dispatch,
		Sales:      repos.sales,
	}, recorder, alerts)
	expenseUC := usecase.NewExpenseUseCase(repos.expenses, repos.maintenance, recorder)
	catalogUC := usecase.NewCatalogUseCase(repos.materials, repos.trucks, repos.vendors, recorder)
	rateUC := usecase.NewRateUseCase(repos.tx, repos.rates, recorder, alerts)
	ledgerUC := ledger.NewUseCase(repos.tx, repos.ledger, recorder)

	// Reportes
	xlsx := infraxlsx.NewRenderer(cfg.App.Location)
	dashboardUC := appanalytics.NewDashboardUseCase(repos.analytics, repos.stock, cfg.App.Location)
	reportUC := appanalytics.NewReportUseCase(repos.analytics, map[string]ports.ReportRenderer{
		"pdf":  infrapdf.NewReportRenderer(cfg.App.Name, cfg.App.Location),
		"xlsx": xlsx,
	}, xlsx, cfg.App.Location)

	jobs, err := scheduler.New(scheduler.Config{
		SummaryCron:    cfg.Scheduler.SummaryCron,
		AlertSweepCron: cfg.Scheduler.AlertSweepCron,
		Location:       cfg.App.Location,
	}, alerts, log)
	if err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.HTTP.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Stone Crusher API",
		}))
	}

	health := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	}
	app.Get("/health", health)
	app.Get("/api/health", health)
	app.Static(storage.PublicPrefix, files.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Tokens:        tokens,
		Auth:          httpRouter.NewAuthHandler(authUC),
		Operations:    httpRouter.NewOperationsHandler(operationsUC),
		Expenses:      httpRouter.NewExpenseHandler(expenseUC, files),
		Catalog:       httpRouter.NewCatalogHandler(catalogUC, rateUC),
		Ledger:        httpRouter.NewLedgerHandler(ledgerUC),
		Dashboard:     httpRouter.NewDashboardHandler(dashboardUC, reportUC),
		Notifications: httpRouter.NewNotificationHandler(alerts, recorder),
	})

	jobs.Start()

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
	jobs.Stop(shutdownCtx)

	log.Info().Msg("aplicación detenida")
	return nil
}
