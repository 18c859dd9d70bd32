package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Credito-api/internal/domain/entity"
)

// CreditRepository define el puerto de persistencia para Credit.
type CreditRepository interface {
	// Save persiste un crédito nuevo y asigna credit.ID.
	Save(ctx context.Context, credit *entity.Credit) error
	// GetByCode devuelve (nil, nil) si no existe. No filtra por cliente.
	GetByCode(ctx context.Context, code uuid.UUID) (*entity.Credit, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Credit, error)
	DeleteByCustomer(ctx context.Context, customerID int64) error
}
