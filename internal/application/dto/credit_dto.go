package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCreditRequest body para POST /api/credits.
type CreateCreditRequest struct {
	CreditValue           decimal.Decimal `json:"creditValue"`
	DayOfFirstInstallment Date            `json:"dayOfFirstInstallment"`
	NumberOfInstallments  int             `json:"numberOfInstallments"`
	CustomerID            int64           `json:"customerId"`
}

// CreditListItem vista ligera para GET /api/credits?customerId=.
type CreditListItem struct {
	CreditCode           uuid.UUID       `json:"creditCode"`
	CreditValue          decimal.Decimal `json:"creditValue"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
}

// CreditDetailResponse vista completa de un crédito con datos del titular.
type CreditDetailResponse struct {
	CreditCode           uuid.UUID       `json:"creditCode"`
	CreditValue          decimal.Decimal `json:"creditValue"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
	Status               string          `json:"status"`
	EmailCustomer        string          `json:"emailCustomer"`
	IncomeCustomer       decimal.Decimal `json:"incomeCustomer"`
}
