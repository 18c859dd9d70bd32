package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Error asocia un tipo de error de dominio (Kind) con el mensaje visible para el cliente.
// errors.Is(err, domain.ErrNotFound) funciona sobre el Kind.
type Error struct {
	Kind    error
	Message string
}

// NewError construye un error de dominio con mensaje.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// FieldError una violación sobre un campo de la petición.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError agrupa todas las violaciones de una petición para reportarlas juntas.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError devuelve nil si no hay violaciones.
func NewValidationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Details devuelve las violaciones como mapa campo -> mensaje. Si un campo tiene
// varias violaciones se conserva la primera.
func (e *ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

// DuplicateError violación de unicidad con el nombre de la restricción afectada
// (ej. "customers_email_key"). errors.Is(err, domain.ErrDuplicate) es true.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	if e.Constraint == "" {
		return ErrDuplicate.Error()
	}
	return ErrDuplicate.Error() + ": " + e.Constraint
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }
