package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Credito-api/internal/application/auth"
	"github.com/jhoicas/Credito-api/internal/application/dto"
	"github.com/jhoicas/Credito-api/internal/domain"
	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/internal/domain/repository/mocks"
	pkgjwt "github.com/jhoicas/Credito-api/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "credito-api-test"}

func customerWithPassword(t *testing.T, password string) *entity.Customer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Customer{ID: 5, Email: "gabriel@email.com", PasswordHash: string(hash)}
}

func TestLogin_Exitoso(t *testing.T) {
	repo := &mocks.CustomerRepositoryMock{}
	repo.On("GetByEmail", mock.Anything, "gabriel@email.com").Return(customerWithPassword(t, "secreto"), nil).Once()

	out, err := auth.NewAuthUseCase(repo, jwtCfg).Login(context.Background(), dto.LoginRequest{
		Email: " Gabriel@Email.com ", Password: "secreto",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, out.Customer.ID)

	claims, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.EqualValues(t, 5, claims.CustomerID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := &mocks.CustomerRepositoryMock{}
	repo.On("GetByEmail", mock.Anything, "gabriel@email.com").Return(customerWithPassword(t, "secreto"), nil).Once()

	_, err := auth.NewAuthUseCase(repo, jwtCfg).Login(context.Background(), dto.LoginRequest{
		Email: "gabriel@email.com", Password: "otro",
	})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_EmailInexistente(t *testing.T) {
	repo := &mocks.CustomerRepositoryMock{}
	repo.On("GetByEmail", mock.Anything, "nadie@email.com").Return(nil, nil).Once()

	_, err := auth.NewAuthUseCase(repo, jwtCfg).Login(context.Background(), dto.LoginRequest{
		Email: "nadie@email.com", Password: "x",
	})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_CamposVacios(t *testing.T) {
	repo := &mocks.CustomerRepositoryMock{}
	_, err := auth.NewAuthUseCase(repo, jwtCfg).Login(context.Background(), dto.LoginRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}
