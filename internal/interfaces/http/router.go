package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Credito-api/internal/application/auth"
	"github.com/jhoicas/Credito-api/internal/application/credit"
	"github.com/jhoicas/Credito-api/internal/application/customer"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC   *customer.CustomerUseCase
	CreditUC     *credit.CreditUseCase
	StatementUC  *credit.StatementUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	AuthRequired bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Token opcional salvo AUTH_REQUIRED; si viene, el cliente pedido debe coincidir
	customerAuth := CustomerAuth(deps.JWTSecret, deps.AuthRequired)

	// Customers: el alta es pública
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Patch("/", customerAuth, customerHandler.Update)
	customers.Get("/:id", customerAuth, customerHandler.GetByID)
	customers.Delete("/:id", customerAuth, customerHandler.Delete)

	// Credits
	credits := api.Group("/credits", customerAuth)
	creditHandler := NewCreditHandler(deps.CreditUC, deps.StatementUC, deps.CustomerUC)
	credits.Post("/", creditHandler.Create)
	credits.Get("/", creditHandler.List)
	credits.Get("/:code", creditHandler.GetByCode)
	credits.Get("/:code/statement", creditHandler.Statement)
}
