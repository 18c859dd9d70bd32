package customer

import (
	"context"

	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos de clientes y créditos atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		creditRepo repository.CreditRepository,
	) error) error
}

// WelcomeNotifier envía el correo de bienvenida al cliente recién registrado.
type WelcomeNotifier interface {
	SendWelcome(ctx context.Context, customer *entity.Customer) error
}
