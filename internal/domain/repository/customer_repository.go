package repository

import (
	"context"

	"github.com/jhoicas/Credito-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID y GetByEmail devuelven (nil, nil) si no existe.
type CustomerRepository interface {
	// Create persiste el cliente y asigna customer.ID. Devuelve domain.ErrDuplicate
	// envuelto con el nombre de la restricción si CPF o email ya existen.
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// Update solo modifica los campos mutables: nombre, apellido, ingreso y dirección.
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}
