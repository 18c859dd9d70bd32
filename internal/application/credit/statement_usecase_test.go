package credit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Credito-api/internal/application/credit"
	"github.com/jhoicas/Credito-api/internal/application/customer"
	"github.com/jhoicas/Credito-api/internal/domain"
	"github.com/jhoicas/Credito-api/internal/domain/entity"
)

type generatorMock struct {
	mock.Mock
}

func (m *generatorMock) GenerateStatementPDF(ctx context.Context, c *entity.Credit, owner *entity.Customer, schedule []entity.Installment) ([]byte, error) {
	ret := m.Called(ctx, c, owner, schedule)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]byte), ret.Error(1)
}

func TestStatement_Download(t *testing.T) {
	f := newFixture()
	code := uuid.New()
	owner := buildCustomer(1)
	f.credits.On("GetByCode", mock.Anything, code).Return(buildCredit(code, 1), nil).Once()
	f.customers.On("GetByID", mock.Anything, int64(1)).Return(owner, nil).Once()

	gen := &generatorMock{}
	gen.On("GenerateStatementPDF", mock.Anything, mock.Anything, owner,
		mock.MatchedBy(func(s []entity.Installment) bool {
			total := decimal.Zero
			for _, in := range s {
				total = total.Add(in.Amount)
			}
			return len(s) == 12 && total.Equal(decimal.NewFromInt(10000))
		})).Return([]byte("%PDF-1.3"), nil).Once()

	uc := credit.NewStatementUseCase(f.uc, customer.NewCustomerUseCase(f.customers, nil, nil, nil), gen)
	pdf, name, err := uc.Download(context.Background(), 1, code)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.Equal(t, "credito-"+code.String()+".pdf", name)
	gen.AssertExpectations(t)
}

func TestStatement_OtroCliente_NoGenera(t *testing.T) {
	f := newFixture()
	code := uuid.New()
	f.credits.On("GetByCode", mock.Anything, code).Return(buildCredit(code, 2), nil).Once()
	gen := &generatorMock{}

	uc := credit.NewStatementUseCase(f.uc, customer.NewCustomerUseCase(f.customers, nil, nil, nil), gen)
	_, _, err := uc.Download(context.Background(), 1, code)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	gen.AssertNotCalled(t, "GenerateStatementPDF", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
