package credit

import (
	"context"

	"github.com/jhoicas/Credito-api/internal/domain/entity"
)

// CustomerDirectory resuelve un cliente por id. Debe devolver un error de dominio
// NotFound ("Id {id} not found") si no existe.
type CustomerDirectory interface {
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
}

// StatementPDFGenerator genera el extracto del crédito con su plan de cuotas.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		credit *entity.Credit,
		customer *entity.Customer,
		schedule []entity.Installment,
	) ([]byte, error)
}
