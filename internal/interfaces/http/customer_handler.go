package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Credito-api/internal/application/customer"
	"github.com/jhoicas/Credito-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *customer.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCustomerRequest  true  "datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar cliente
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "id del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := checkCustomerAccess(c, id, customer.MsgForbidden); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Solo nombre, apellido, ingreso y dirección. CPF y email no cambian.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customerId  query     int                        true  "id del cliente"
// @Param        body        body      dto.UpdateCustomerRequest  true  "campos mutables"
// @Success      200         {object}  dto.CustomerResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      401         {object}  dto.ErrorResponse
// @Failure      403         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/customers [patch]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c.Query("customerId"))
	if !ok {
		return badRequest(c, "INVALID_PARAM", "customerId inválido")
	}
	if err := checkCustomerAccess(c, id, customer.MsgForbidden); err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Elimina también sus créditos.
// @Tags         customers
// @Param        id   path  int  true  "id del cliente"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := checkCustomerAccess(c, id, customer.MsgForbidden); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID acepta enteros positivos.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
