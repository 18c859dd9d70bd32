package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Credito-api/internal/domain"
	"github.com/jhoicas/Credito-api/pkg/jwt"
)

// LocalCustomerID key en c.Locals para el cliente autenticado.
const LocalCustomerID = "customer_id"

// CustomerAuth valida el Bearer Token JWT y guarda el id del cliente en c.Locals.
// Con required=false una petición sin header pasa sin identidad; un token
// presente pero inválido siempre es 401.
func CustomerAuth(jwtSecret string, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if !required {
				return c.Next()
			}
			return unauthorized(c, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalCustomerID, claims.CustomerID)
		return c.Next()
	}
}

// GetCustomerID devuelve el cliente del token (después de CustomerAuth).
func GetCustomerID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalCustomerID).(int64)
	return id, ok && id > 0
}

// checkCustomerAccess exige que el customerId pedido coincida con el del token, si hay token.
// forbiddenMsg es el mensaje del 403.
func checkCustomerAccess(c *fiber.Ctx, customerID int64, forbiddenMsg string) error {
	tokenID, ok := GetCustomerID(c)
	if !ok || tokenID == customerID {
		return nil
	}
	return domain.NewError(domain.ErrForbidden, forbiddenMsg)
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(newErrorResponse(fiber.StatusUnauthorized, code, "Unauthorized", message))
}
