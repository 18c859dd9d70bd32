// Package auth autentica clientes (email + password) y emite tokens JWT.
package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Credito-api/internal/application/customer"
	"github.com/jhoicas/Credito-api/internal/application/dto"
	"github.com/jhoicas/Credito-api/internal/domain"
	"github.com/jhoicas/Credito-api/internal/domain/repository"
	"github.com/jhoicas/Credito-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de clientes.
type AuthUseCase struct {
	customerRepo repository.CustomerRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(customerRepo repository.CustomerRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{customerRepo: customerRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password y genera un JWT cuyo subject es el id del cliente.
// Email inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, "email and password are required")
	}
	c, err := uc.customerRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, fmt.Errorf("auth: buscar cliente: %w", err)
	}
	if c == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, c.ID, c.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token:    token,
		Customer: *customer.ToResponse(c),
	}, nil
}
