package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Credito-api/internal/application/credit"
	"github.com/jhoicas/Credito-api/internal/application/dto"
)

// CreditHandler maneja emisión y consulta de créditos.
type CreditHandler struct {
	uc        *credit.CreditUseCase
	statement *credit.StatementUseCase
	customers credit.CustomerDirectory
}

// NewCreditHandler construye el handler. customers se usa para responder 404 al
// listar créditos de un cliente inexistente.
func NewCreditHandler(uc *credit.CreditUseCase, statement *credit.StatementUseCase, customers credit.CustomerDirectory) *CreditHandler {
	return &CreditHandler{uc: uc, statement: statement, customers: customers}
}

// Create godoc
// @Summary      Emitir crédito
// @Description  Valida cuotas (1..48) y fecha de la primera cuota (hoy .. hoy + 3 meses).
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCreditRequest  true  "solicitud de crédito"
// @Success      201   {object}  dto.CreditDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/credits [post]
func (h *CreditHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := checkCustomerAccess(c, in.CustomerID, credit.MsgForbidden); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.IssueDetail(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar créditos del cliente
// @Tags         credits
// @Produce      json
// @Param        customerId  query     int  true  "id del cliente"
// @Success      200         {array}   dto.CreditListItem
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/credits [get]
func (h *CreditHandler) List(c *fiber.Ctx) error {
	customerID, ok := parseID(c.Query("customerId"))
	if !ok {
		return badRequest(c, "INVALID_PARAM", "customerId inválido")
	}
	if err := checkCustomerAccess(c, customerID, credit.MsgForbidden); err != nil {
		return writeError(c, err)
	}
	if _, err := h.customers.FindByID(c.UserContext(), customerID); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListItems(c.UserContext(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByCode godoc
// @Summary      Consultar crédito por código
// @Description  Solo el titular puede ver el crédito.
// @Tags         credits
// @Produce      json
// @Param        code        path      string  true  "código del crédito (UUID)"
// @Param        customerId  query     int     true  "id del cliente"
// @Success      200         {object}  dto.CreditDetailResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      403         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/credits/{code} [get]
func (h *CreditHandler) GetByCode(c *fiber.Ctx) error {
	code, customerID, done, err := h.codeAndCustomer(c)
	if done {
		return err
	}
	out, err := h.uc.DetailByCode(c.UserContext(), customerID, code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Extracto PDF del crédito
// @Tags         credits
// @Produce      application/pdf
// @Param        code        path      string  true  "código del crédito (UUID)"
// @Param        customerId  query     int     true  "id del cliente"
// @Success      200         {file}    binary
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      403         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/credits/{code}/statement [get]
func (h *CreditHandler) Statement(c *fiber.Ctx) error {
	code, customerID, done, err := h.codeAndCustomer(c)
	if done {
		return err
	}
	pdf, filename, err := h.statement.Download(c.UserContext(), customerID, code)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// codeAndCustomer lee :code y ?customerId= y verifica el token. done=true indica
// que ya se respondió y err es el resultado del handler.
func (h *CreditHandler) codeAndCustomer(c *fiber.Ctx) (uuid.UUID, int64, bool, error) {
	code, err := uuid.Parse(c.Params("code"))
	if err != nil {
		return uuid.Nil, 0, true, badRequest(c, "INVALID_CODE", "código de crédito inválido")
	}
	customerID, ok := parseID(c.Query("customerId"))
	if !ok {
		return uuid.Nil, 0, true, badRequest(c, "INVALID_PARAM", "customerId inválido")
	}
	if err := checkCustomerAccess(c, customerID, credit.MsgForbidden); err != nil {
		return uuid.Nil, 0, true, writeError(c, err)
	}
	return code, customerID, false, nil
}
