package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address dirección de correspondencia del cliente.
type Address struct {
	ZipCode string
	Street  string
}

// Customer representa un cliente titular de créditos.
// CPF y Email son únicos en todo el sistema e inmutables tras la creación.
type Customer struct {
	ID           int64
	FirstName    string
	LastName     string
	CPF          string // documento fiscal, 11 dígitos
	Email        string
	Income       decimal.Decimal // ingreso mensual, no negativo
	PasswordHash string          // bcrypt
	Address      Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre y apellido separados por espacio.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
