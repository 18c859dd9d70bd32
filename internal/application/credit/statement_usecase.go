package credit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domaincredit "github.com/jhoicas/Credito-api/internal/domain/credit"
)

// StatementUseCase genera el extracto PDF de un crédito para su titular.
type StatementUseCase struct {
	credits   *CreditUseCase
	customers CustomerDirectory
	generator StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(credits *CreditUseCase, customers CustomerDirectory, generator StatementPDFGenerator) *StatementUseCase {
	return &StatementUseCase{credits: credits, customers: customers, generator: generator}
}

// Download aplica el mismo control de titularidad que FindByCode y genera el PDF.
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *StatementUseCase) Download(ctx context.Context, customerID int64, code uuid.UUID) ([]byte, string, error) {
	credit, err := uc.credits.FindByCode(ctx, customerID, code)
	if err != nil {
		return nil, "", err
	}
	owner, err := uc.customers.FindByID(ctx, credit.CustomerID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateStatementPDF(ctx, credit, owner, domaincredit.Schedule(credit))
	if err != nil {
		return nil, "", fmt.Errorf("credit: generar extracto: %w", err)
	}
	return pdf, fmt.Sprintf("credito-%s.pdf", credit.Code), nil
}
