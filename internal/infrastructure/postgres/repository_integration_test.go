package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Credito-api/internal/domain"
	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/internal/domain/repository"
	"github.com/jhoicas/Credito-api/pkg/config"
)

// Estos tests necesitan una base PostgreSQL vacía: TEST_DATABASE_URL=postgres://...
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = Migrate(ctx, pool)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `TRUNCATE TABLE credits, customers RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func newCustomer(cpf, email string) *entity.Customer {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &entity.Customer{
		FirstName:    "Gabriel",
		LastName:     "Silva",
		CPF:          cpf,
		Email:        email,
		Income:       decimal.RequireFromString("1000.50"),
		PasswordHash: "hash",
		Address:      entity.Address{ZipCode: "12345", Street: "Rua do Gabriel"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCustomerRepo_CRUD(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewCustomerRepository(pool)

	c := newCustomer("28475934625", "gabriel@email.com")
	require.NoError(t, repo.Create(ctx, c))
	require.NotZero(t, c.ID)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "28475934625", got.CPF)
	assert.True(t, got.Income.Equal(c.Income))

	byEmail, err := repo.GetByEmail(ctx, "gabriel@email.com")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byEmail.ID)

	got.FirstName = "Gabi"
	got.Address.Street = "Rua Nova"
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gabi", updated.FirstName)
	assert.Equal(t, "Rua Nova", updated.Address.Street)

	require.NoError(t, repo.Delete(ctx, c.ID))
	gone, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCustomerRepo_Duplicados(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewCustomerRepository(pool)

	require.NoError(t, repo.Create(ctx, newCustomer("28475934625", "a@email.com")))

	err := repo.Create(ctx, newCustomer("28475934625", "b@email.com"))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Contains(t, err.Error(), "customers_cpf_key")

	err = repo.Create(ctx, newCustomer("11144477735", "a@email.com"))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Contains(t, err.Error(), "customers_email_key")
}

func TestCreditRepo_SaveYConsultas(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	customers := NewCustomerRepository(pool)
	credits := NewCreditRepository(pool)

	owner := newCustomer("28475934625", "gabriel@email.com")
	require.NoError(t, customers.Create(ctx, owner))

	empty, err := credits.ListByCustomer(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	c := &entity.Credit{
		Code:             uuid.New(),
		Value:            decimal.NewFromInt(10000),
		FirstInstallment: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Installments:     12,
		Status:           entity.CreditStatusInProgress,
		CustomerID:       owner.ID,
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, credits.Save(ctx, c))
	require.NotZero(t, c.ID)

	got, err := credits.GetByCode(ctx, c.Code)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.Code, got.Code)
	assert.Equal(t, owner.ID, got.CustomerID)
	assert.Equal(t, entity.CreditStatusInProgress, got.Status)
	assert.True(t, got.Value.Equal(c.Value))
	assert.Equal(t, c.FirstInstallment, got.FirstInstallment.UTC())

	missing, err := credits.GetByCode(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := credits.ListByCustomer(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTxRunner_RollbackSiFalla(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	customers := NewCustomerRepository(pool)
	owner := newCustomer("28475934625", "gabriel@email.com")
	require.NoError(t, customers.Create(ctx, owner))

	boom := errors.New("falla simulada")
	err := NewTxRunner(pool).Run(ctx, func(customerRepo repository.CustomerRepository, _ repository.CreditRepository) error {
		require.NoError(t, customerRepo.Delete(ctx, owner.ID))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	still, err := customers.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.NotNil(t, still, "el borrado debe revertirse")
}
