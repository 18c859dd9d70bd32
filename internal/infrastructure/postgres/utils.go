package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Credito-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// duplicateError traduce la violación a *domain.DuplicateError con el nombre de la
// restricción para que el caso de uso identifique el campo.
func duplicateError(err error) error {
	dup := &domain.DuplicateError{}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		dup.Constraint = pgErr.ConstraintName
	}
	return dup
}
