package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Credito-api/internal/application/dto"
	"github.com/jhoicas/Credito-api/internal/domain"
)

const (
	titleBadRequest = "Bad Request! Consult the documentation"
	titleConflict   = "Conflict! Consult the documentation"
)

// LocalError guarda el error no mapeado para que RequestLogger lo registre.
const LocalError = "handler_error"

// newErrorResponse arma el cuerpo estándar de error.
func newErrorResponse(status int, code, title, message string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Code:      code,
		Title:     title,
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

// writeError traduce un error de dominio a status + ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body := newErrorResponse(fiber.StatusBadRequest, "VALIDATION", titleBadRequest, verr.Error())
		body.Details = verr.Details()
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	status, code, title := fiber.StatusInternalServerError, "INTERNAL", "Internal Server Error"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code, title = fiber.StatusNotFound, "NOT_FOUND", titleBadRequest
	case errors.Is(err, domain.ErrForbidden):
		status, code, title = fiber.StatusForbidden, "FORBIDDEN", "Forbidden"
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		status, code, title = fiber.StatusConflict, "CONFLICT", titleConflict
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, title = fiber.StatusBadRequest, "VALIDATION", titleBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status, code, title = fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized"
	}

	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		c.Locals(LocalError, err)
		msg = "error interno"
	}
	return c.Status(status).JSON(newErrorResponse(status, code, title, msg))
}

// badRequest responde 400 con código propio (body o parámetros mal formados).
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(newErrorResponse(fiber.StatusBadRequest, code, titleBadRequest, message))
}
