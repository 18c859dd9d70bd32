package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Credito-api/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "customers_cpf_key"}
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", pgErr)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto no cuenta")))
}

func TestDuplicateError_NombraLaRestriccion(t *testing.T) {
	err := duplicateError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	var dup *domain.DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "customers_email_key", dup.Constraint)

	err = duplicateError(errors.New("otro"))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	require.True(t, errors.As(err, &dup))
	assert.Empty(t, dup.Constraint)
}
