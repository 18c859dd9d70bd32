// @title        Credito API
// @version      1.0
// @description  Registro de clientes y emisión de créditos con control de titularidad.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
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

	"github.com/jhoicas/Credito-api/docs"
	"github.com/jhoicas/Credito-api/internal/application/auth"
	"github.com/jhoicas/Credito-api/internal/application/credit"
	"github.com/jhoicas/Credito-api/internal/application/customer"
	inframail "github.com/jhoicas/Credito-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/Credito-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Credito-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Credito-api/internal/interfaces/http"
	"github.com/jhoicas/Credito-api/pkg/config"
	"github.com/jhoicas/Credito-api/pkg/logger"
)

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
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones al día")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	creditRepo := postgres.NewCreditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Correo de bienvenida solo si hay SMTP configurado
	var notifier customer.WelcomeNotifier
	if cfg.SMTP.Enabled() {
		notifier = inframail.NewSender(cfg.SMTP, cfg.App.Name, log)
	} else {
		log.Warn().Msg("SMTP_HOST vacío: correo de bienvenida desactivado")
	}

	customerUC := customer.NewCustomerUseCase(customerRepo, txRunner, notifier, log.Named("customer"))
	creditUC := credit.NewCreditUseCase(customerUC, creditRepo, credit.Config{
		MaxMonths: cfg.Credit.MaxFirstInstallmentMonths,
		Location:  loc,
	}, log.Named("credit"))

	// PDF: extracto del crédito con plan de cuotas
	statementUC := credit.NewStatementUseCase(creditUC, customerUC, infrapdf.NewMarotoStatementGenerator(cfg.App.Name))

	authUC := auth.NewAuthUseCase(customerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:   customerUC,
		CreditUC:     creditUC,
		StatementUC:  statementUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		AuthRequired: cfg.JWT.Required,
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
