package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditStatus estado del ciclo de vida de un crédito.
type CreditStatus string

// Estados de crédito. Solo IN_PROGRESS se asigna en este servicio.
const (
	CreditStatusInProgress CreditStatus = "IN_PROGRESS"
	CreditStatusApproved   CreditStatus = "APPROVED"
	CreditStatusRejected   CreditStatus = "REJECTED"
)

// Credit representa un crédito emitido a un cliente.
// Code es el identificador externo (UUID aleatorio); ID es la clave de almacenamiento.
type Credit struct {
	ID               int64
	Code             uuid.UUID
	Value            decimal.Decimal // principal, positivo
	FirstInstallment time.Time       // fecha de la primera cuota (sin hora)
	Installments     int             // 1..48
	Status           CreditStatus
	CustomerID       int64 // FK a customers.id, inmutable
	CreatedAt        time.Time
}

// BelongsTo indica si el crédito pertenece al cliente dado.
func (c *Credit) BelongsTo(customerID int64) bool {
	return c.CustomerID == customerID
}

// Installment cuota derivada del plan de pagos (no se persiste).
type Installment struct {
	Number  int
	DueDate time.Time
	Amount  decimal.Decimal
}
