package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Income    decimal.Decimal `json:"income"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	ZipCode   string          `json:"zipCode"`
	Street    string          `json:"street"`
}

// UpdateCustomerRequest body para PATCH /api/customers?customerId=.
// Solo campos mutables; CPF y email no se modifican.
type UpdateCustomerRequest struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Income    decimal.Decimal `json:"income"`
	ZipCode   string          `json:"zipCode"`
	Street    string          `json:"street"`
}

// CustomerResponse vista de cliente (sin password).
type CustomerResponse struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Email     string          `json:"email"`
	Income    decimal.Decimal `json:"income"`
	ZipCode   string          `json:"zipCode"`
	Street    string          `json:"street"`
}
