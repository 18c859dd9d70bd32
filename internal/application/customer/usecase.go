// Package customer implementa el directorio de clientes y su gestión (alta, consulta,
// actualización y baja).
package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Credito-api/internal/application/dto"
	"github.com/jhoicas/Credito-api/internal/domain"
	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/internal/domain/repository"
	"github.com/jhoicas/Credito-api/pkg/cpf"
	"github.com/jhoicas/Credito-api/pkg/logger"
)

// MsgForbidden mensaje devuelto cuando el token pertenece a otro cliente.
const MsgForbidden = "You don't have permission to access this customer. Please contact the admins."

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	tx       TxRunner
	notifier WelcomeNotifier
	log      *logger.Logger
	hashCost int
	now      func() time.Time
}

// NewCustomerUseCase construye el caso de uso. notifier puede ser nil (sin correo de bienvenida).
func NewCustomerUseCase(repo repository.CustomerRepository, tx TxRunner, notifier WelcomeNotifier, log *logger.Logger) *CustomerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerUseCase{
		repo:     repo,
		tx:       tx,
		notifier: notifier,
		log:      log,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// WithHashCost permite bajar el costo de bcrypt (tests).
func (uc *CustomerUseCase) WithHashCost(cost int) *CustomerUseCase {
	uc.hashCost = cost
	return uc
}

// NotFoundError error de dominio para un id de cliente inexistente.
func NotFoundError(id int64) error {
	return domain.NewError(domain.ErrNotFound, fmt.Sprintf("Id %d not found", id))
}

// FindByID resuelve un cliente por id. Devuelve NotFound ("Id {id} not found") si no existe.
func (uc *CustomerUseCase) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer: obtener cliente: %w", err)
	}
	if c == nil {
		return nil, NotFoundError(id)
	}
	return c, nil
}

// Get igual que FindByID pero devuelve la vista pública.
func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToResponse(c), nil
}

// Create valida, hashea el password y persiste el cliente.
// CPF o email repetidos se reportan como Conflict.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("customer: hashear password: %w", err)
	}
	now := uc.now()
	c := &entity.Customer{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		CPF:          cpf.Normalize(in.CPF),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Income:       in.Income,
		PasswordHash: string(hash),
		Address: entity.Address{
			ZipCode: strings.TrimSpace(in.ZipCode),
			Street:  strings.TrimSpace(in.Street),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, conflictError(err, c)
		}
		return nil, fmt.Errorf("customer: crear cliente: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.SendWelcome(ctx, c); err != nil {
			uc.log.Warn().Err(err).Int64("customer_id", c.ID).Msg("correo de bienvenida no enviado")
		}
	}
	return ToResponse(c), nil
}

// Update modifica los campos mutables (nombre, apellido, ingreso, dirección).
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}
	c, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.FirstName = strings.TrimSpace(in.FirstName)
	c.LastName = strings.TrimSpace(in.LastName)
	c.Income = in.Income
	c.Address = entity.Address{
		ZipCode: strings.TrimSpace(in.ZipCode),
		Street:  strings.TrimSpace(in.Street),
	}
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("customer: actualizar cliente: %w", err)
	}
	return ToResponse(c), nil
}

// Delete elimina el cliente y sus créditos en una sola transacción.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(customerRepo repository.CustomerRepository, creditRepo repository.CreditRepository) error {
		if err := creditRepo.DeleteByCustomer(ctx, id); err != nil {
			return fmt.Errorf("customer: eliminar créditos: %w", err)
		}
		if err := customerRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("customer: eliminar cliente: %w", err)
		}
		return nil
	})
}

// constraintEmail restricción de unicidad del email en la tabla customers.
const constraintEmail = "customers_email_key"

// conflictError traduce la violación de unicidad a un mensaje que nombra el campo.
// Sin restricción conocida se asume el CPF.
func conflictError(err error, c *entity.Customer) error {
	var dup *domain.DuplicateError
	if errors.As(err, &dup) && dup.Constraint == constraintEmail {
		return domain.NewError(domain.ErrConflict, fmt.Sprintf("Email %s already registered", c.Email))
	}
	return domain.NewError(domain.ErrConflict, fmt.Sprintf("CPF %s already registered", c.CPF))
}

// ToResponse convierte la entidad a la vista pública.
func ToResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CPF:       c.CPF,
		Email:     c.Email,
		Income:    c.Income,
		ZipCode:   c.Address.ZipCode,
		Street:    c.Address.Street,
	}
}
