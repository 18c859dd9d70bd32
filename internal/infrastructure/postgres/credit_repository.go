package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)

const creditColumns = `id, credit_code, credit_value, day_first_installment,
		number_of_installments, status, customer_id, created_at`

// CreditRepo implementación de CreditRepository (usable con pool o tx).
type CreditRepo struct {
	q Querier
}

// NewCreditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

// Save persiste un crédito nuevo y asigna el id generado.
// La FK a customers y el UNIQUE de credit_code son la última defensa.
func (r *CreditRepo) Save(ctx context.Context, c *entity.Credit) error {
	query := `
		INSERT INTO credits (credit_code, credit_value, day_first_installment,
			number_of_installments, status, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Code, c.Value, c.FirstInstallment, c.Installments, string(c.Status), c.CustomerID, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateError(err)
		}
		return fmt.Errorf("insert credit: %w", err)
	}
	return nil
}

// GetByCode obtiene un crédito por su código, sin filtrar por cliente.
func (r *CreditRepo) GetByCode(ctx context.Context, code uuid.UUID) (*entity.Credit, error) {
	c, err := scanCredit(r.q.QueryRow(ctx, `SELECT `+creditColumns+` FROM credits WHERE credit_code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit: %w", err)
	}
	return c, nil
}

// ListByCustomer lista los créditos del cliente.
func (r *CreditRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Credit, error) {
	rows, err := r.q.Query(ctx, `SELECT `+creditColumns+` FROM credits WHERE customer_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Credit, 0)
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// DeleteByCustomer elimina todos los créditos del cliente.
func (r *CreditRepo) DeleteByCustomer(ctx context.Context, customerID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM credits WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete credits: %w", err)
	}
	return nil
}

func scanCredit(row pgx.Row) (*entity.Credit, error) {
	var (
		c      entity.Credit
		status string
	)
	if err := row.Scan(
		&c.ID, &c.Code, &c.Value, &c.FirstInstallment,
		&c.Installments, &status, &c.CustomerID, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.Status = entity.CreditStatus(status)
	return &c, nil
}
