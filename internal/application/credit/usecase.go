// Package credit implementa la emisión y consulta de créditos con control de titularidad.
package credit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Credito-api/internal/application/dto"
	"github.com/jhoicas/Credito-api/internal/domain"
	domaincredit "github.com/jhoicas/Credito-api/internal/domain/credit"
	"github.com/jhoicas/Credito-api/internal/domain/entity"
	"github.com/jhoicas/Credito-api/internal/domain/repository"
	"github.com/jhoicas/Credito-api/pkg/logger"
)

// MsgForbidden mensaje devuelto cuando el crédito no pertenece al cliente indicado.
const MsgForbidden = "You don't have permission to access this credit. Please contact the admins."

// Config reglas configurables de emisión.
type Config struct {
	MaxMonths int            // ventana máxima para la primera cuota; 0 = 3 meses
	Location  *time.Location // zona horaria con la que se calcula "hoy"; nil = UTC
}

// CreditUseCase emite créditos y los consulta verificando titularidad.
type CreditUseCase struct {
	customers CustomerDirectory
	credits   repository.CreditRepository
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
	newCode   func() uuid.UUID
}

// NewCreditUseCase construye el caso de uso.
func NewCreditUseCase(customers CustomerDirectory, credits repository.CreditRepository, cfg Config, log *logger.Logger) *CreditUseCase {
	if cfg.MaxMonths <= 0 {
		cfg.MaxMonths = domaincredit.DefaultMaxMonths
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CreditUseCase{
		customers: customers,
		credits:   credits,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
		newCode:   uuid.New,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *CreditUseCase) WithClock(now func() time.Time) *CreditUseCase {
	uc.now = now
	return uc
}

// Today fecha calendario actual en la zona configurada.
func (uc *CreditUseCase) Today() time.Time {
	return domaincredit.DateOf(uc.now().In(uc.cfg.Location))
}

// Issue valida la solicitud, resuelve el cliente titular y persiste el crédito
// con un código nuevo y estado IN_PROGRESS. Si la validación falla o el cliente no
// existe no se escribe nada.
func (uc *CreditUseCase) Issue(ctx context.Context, in dto.CreateCreditRequest) (*entity.Credit, error) {
	credit, _, err := uc.issue(ctx, in)
	return credit, err
}

// IssueDetail igual que Issue pero devuelve la vista completa con datos del titular.
func (uc *CreditUseCase) IssueDetail(ctx context.Context, in dto.CreateCreditRequest) (*dto.CreditDetailResponse, error) {
	credit, owner, err := uc.issue(ctx, in)
	if err != nil {
		return nil, err
	}
	return ToDetail(credit, owner), nil
}

func (uc *CreditUseCase) issue(ctx context.Context, in dto.CreateCreditRequest) (*entity.Credit, *entity.Customer, error) {
	req := domaincredit.Request{
		Value:            in.CreditValue,
		FirstInstallment: in.DayOfFirstInstallment.Time,
		Installments:     in.NumberOfInstallments,
		CustomerID:       in.CustomerID,
	}
	if err := domaincredit.ValidateRequest(req, uc.Today(), uc.cfg.MaxMonths); err != nil {
		return nil, nil, err
	}

	owner, err := uc.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		return nil, nil, err
	}

	credit := &entity.Credit{
		Code:             uc.newCode(),
		Value:            in.CreditValue,
		FirstInstallment: domaincredit.DateOf(in.DayOfFirstInstallment.Time),
		Installments:     in.NumberOfInstallments,
		Status:           entity.CreditStatusInProgress,
		CustomerID:       owner.ID,
		CreatedAt:        uc.now(),
	}
	if err := uc.credits.Save(ctx, credit); err != nil {
		return nil, nil, fmt.Errorf("credit: guardar crédito: %w", err)
	}

	uc.log.Info().
		Str("credit_code", credit.Code.String()).
		Int64("customer_id", owner.ID).
		Int("installments", credit.Installments).
		Msg("crédito emitido")
	return credit, owner, nil
}

// ListByCustomer devuelve los créditos del cliente (vacío si no tiene).
// No verifica que el cliente exista.
func (uc *CreditUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Credit, error) {
	list, err := uc.credits.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("credit: listar créditos: %w", err)
	}
	if list == nil {
		list = []*entity.Credit{}
	}
	return list, nil
}

// ListItems igual que ListByCustomer con la vista ligera.
func (uc *CreditUseCase) ListItems(ctx context.Context, customerID int64) ([]dto.CreditListItem, error) {
	list, err := uc.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CreditListItem, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CreditListItem{
			CreditCode:           c.Code,
			CreditValue:          c.Value,
			NumberOfInstallments: c.Installments,
		})
	}
	return out, nil
}

// FindByCode busca el crédito por código y verifica que pertenezca a customerID.
//
// Retorna:
//   - NotFound  "Creditcode {code} not found" si el código no existe.
//   - Forbidden si el crédito es de otro cliente.
func (uc *CreditUseCase) FindByCode(ctx context.Context, customerID int64, code uuid.UUID) (*entity.Credit, error) {
	credit, err := uc.credits.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("credit: obtener crédito: %w", err)
	}
	if credit == nil {
		return nil, domain.NewError(domain.ErrNotFound, fmt.Sprintf("Creditcode %s not found", code))
	}
	if !credit.BelongsTo(customerID) {
		uc.log.Warn().
			Str("credit_code", code.String()).
			Int64("customer_id", customerID).
			Msg("acceso a crédito de otro cliente")
		return nil, domain.NewError(domain.ErrForbidden, MsgForbidden)
	}
	return credit, nil
}

// DetailByCode FindByCode más los datos del titular (email e ingreso).
func (uc *CreditUseCase) DetailByCode(ctx context.Context, customerID int64, code uuid.UUID) (*dto.CreditDetailResponse, error) {
	credit, err := uc.FindByCode(ctx, customerID, code)
	if err != nil {
		return nil, err
	}
	owner, err := uc.customers.FindByID(ctx, credit.CustomerID)
	if err != nil {
		return nil, err
	}
	return ToDetail(credit, owner), nil
}

// ToDetail arma la vista completa del crédito.
func ToDetail(c *entity.Credit, owner *entity.Customer) *dto.CreditDetailResponse {
	out := &dto.CreditDetailResponse{
		CreditCode:           c.Code,
		CreditValue:          c.Value,
		NumberOfInstallments: c.Installments,
		Status:               string(c.Status),
	}
	if owner != nil {
		out.EmailCustomer = owner.Email
		out.IncomeCustomer = owner.Income
	}
	return out
}
