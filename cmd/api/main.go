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
	"github.com/tu-usuario/studio-pro/internal/application/auth"
	"github.com/tu-usuario/studio-pro/internal/application/crm"
	"github.com/tu-usuario/studio-pro/internal/application/ledger"
	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
	"github.com/tu-usuario/studio-pro/internal/application/staff"
	"github.com/tu-usuario/studio-pro/internal/infrastructure/cache"
	infrapdf "github.com/tu-usuario/studio-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/studio-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/studio-pro/internal/interfaces/http"
	"github.com/tu-usuario/studio-pro/pkg/config"
	"github.com/tu-usuario/studio-pro/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	views, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al cache de vistas")
	}
	defer views.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	shootRepo := postgres.NewShootRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := crm.NewCustomerUseCase(customerRepo, views)
	employeeUC := staff.NewEmployeeUseCase(userRepo, employeeRepo, txRunner, views)
	shootUC := scheduling.NewShootUseCase(shootRepo, txRunner, views)
	taskUC := scheduling.NewTaskUseCase(taskRepo, views)

	// PDF: recibo de pago de una sesión con su historial de abonos
	receiptGen := infrapdf.NewReceiptGenerator(cfg.App.Name)
	receiptUC := scheduling.NewReceiptUseCase(shootRepo, txnRepo, receiptGen)

	transactionUC := ledger.NewTransactionUseCase(txnRepo, views)
	statsUC := ledger.NewStatsUseCase(financeRepo, views)

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
		Title:    "Studio Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		EmployeeUC:    employeeUC,
		ShootUC:       shootUC,
		ReceiptUC:     receiptUC,
		TaskUC:        taskUC,
		TransactionUC: transactionUC,
		StatsUC:       statsUC,
		JWTSecret:     cfg.JWT.Secret,
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
