// Package mocks contiene mocks de testify para los puertos de repositorio.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepositoryMock)(nil)
	_ repository.CreditRepository   = (*CreditRepositoryMock)(nil)
)

type CustomerRepositoryMock struct {
	mock.Mock
}

func (m *CustomerRepositoryMock) Create(ctx context.Context, customer *entity.Customer) error {
	ret := m.Called(ctx, customer)
	return ret.Error(0)
}

func (m *CustomerRepositoryMock) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	ret := m.Called(ctx, id)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*entity.Customer), ret.Error(1)
}

func (m *CustomerRepositoryMock) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	ret := m.Called(ctx, email)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*entity.Customer), ret.Error(1)
}

func (m *CustomerRepositoryMock) Update(ctx context.Context, customer *entity.Customer) error {
	ret := m.Called(ctx, customer)
	return ret.Error(0)
}

func (m *CustomerRepositoryMock) Delete(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

type CreditRepositoryMock struct {
	mock.Mock
}

func (m *CreditRepositoryMock) Save(ctx context.Context, credit *entity.Credit) error {
	ret := m.Called(ctx, credit)
	return ret.Error(0)
}

func (m *CreditRepositoryMock) GetByCode(ctx context.Context, code uuid.UUID) (*entity.Credit, error) {
	ret := m.Called(ctx, code)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*entity.Credit), ret.Error(1)
}

func (m *CreditRepositoryMock) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Credit, error) {
	ret := m.Called(ctx, customerID)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]*entity.Credit), ret.Error(1)
}

func (m *CreditRepositoryMock) DeleteByCustomer(ctx context.Context, customerID int64) error {
	ret := m.Called(ctx, customerID)
	return ret.Error(0)
}
