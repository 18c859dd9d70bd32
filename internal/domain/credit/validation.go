// Package credit contiene las reglas de dominio de la solicitud de crédito:
// rango de cuotas, ventana de la primera cuota y plan de pagos.
package credit

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Credito-api/internal/domain"
)

// Límites de cuotas permitidos.
const (
	MinInstallments = 1
	MaxInstallments = 48

	// DefaultMaxMonths ventana máxima (en meses desde hoy) para la primera cuota.
	DefaultMaxMonths = 3
)

// Nombres de campo tal como los ve el cliente de la API.
const (
	FieldCreditValue      = "creditValue"
	FieldFirstInstallment = "dayOfFirstInstallment"
	FieldInstallments     = "numberOfInstallments"
	FieldCustomerID       = "customerId"
)

// Mensajes visibles para el cliente (contrato de la API).
const (
	MsgInvalidInput     = "Invalid input"
	MsgMinInstallments  = "The minimum number of installments is 1"
	MsgMaxInstallments  = "The maximum number of installments is 48"
	MsgPresentOrFuture  = "The date of first Installment must be on present or future"
	msgMaxMonthsPattern = "The date of first Installment must be a maximum of %d months from the start date"
)

// MaxMonthsMessage mensaje de la ventana máxima para n meses.
func MaxMonthsMessage(n int) string {
	return fmt.Sprintf(msgMaxMonthsPattern, n)
}

// Request datos de una solicitud de crédito ya parseados.
// Los valores cero se consideran ausentes.
type Request struct {
	Value            decimal.Decimal
	FirstInstallment time.Time
	Installments     int
	CustomerID       int64
}

// ValidateRequest valida la solicitud contra today (fecha calendario, ver DateOf)
// y devuelve un *domain.ValidationError con todas las violaciones, o nil.
// Una fecha de primera cuota igual a today + maxMonths es válida. El valor debe
// ser positivo y caber en la columna de montos (ver domain.FitsMoney).
func ValidateRequest(req Request, today time.Time, maxMonths int) error {
	if maxMonths <= 0 {
		maxMonths = DefaultMaxMonths
	}
	var errs []domain.FieldError

	if !req.Value.IsPositive() || !domain.FitsMoney(req.Value) {
		errs = append(errs, domain.FieldError{Field: FieldCreditValue, Message: MsgInvalidInput})
	}

	if req.FirstInstallment.IsZero() {
		errs = append(errs, domain.FieldError{Field: FieldFirstInstallment, Message: MsgInvalidInput})
	} else {
		first := DateOf(req.FirstInstallment)
		today = DateOf(today)
		switch {
		case first.Before(today):
			errs = append(errs, domain.FieldError{Field: FieldFirstInstallment, Message: MsgPresentOrFuture})
		case first.After(AddMonths(today, maxMonths)):
			errs = append(errs, domain.FieldError{Field: FieldFirstInstallment, Message: MaxMonthsMessage(maxMonths)})
		}
	}

	switch {
	case req.Installments < MinInstallments:
		errs = append(errs, domain.FieldError{Field: FieldInstallments, Message: MsgMinInstallments})
	case req.Installments > MaxInstallments:
		errs = append(errs, domain.FieldError{Field: FieldInstallments, Message: MsgMaxInstallments})
	}

	if req.CustomerID <= 0 {
		errs = append(errs, domain.FieldError{Field: FieldCustomerID, Message: MsgInvalidInput})
	}

	return domain.NewValidationError(errs)
}
