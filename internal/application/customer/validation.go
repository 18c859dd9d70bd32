package customer

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Credito-api/internal/application/dto"
	"github.com/jhoicas/Credito-api/internal/domain"
	"github.com/jhoicas/Credito-api/pkg/cpf"
)

func validateCreate(in dto.CreateCustomerRequest) error {
	var errs []domain.FieldError
	errs = append(errs, validateProfile(in.FirstName, in.LastName, in.Income, in.ZipCode, in.Street)...)

	switch {
	case strings.TrimSpace(in.CPF) == "":
		errs = append(errs, domain.FieldError{Field: "cpf", Message: "Empty CPF"})
	case cpf.Validate(in.CPF) != nil:
		errs = append(errs, domain.FieldError{Field: "cpf", Message: "Invalid CPF"})
	}

	switch {
	case strings.TrimSpace(in.Email) == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "Empty email"})
	case !validEmail(in.Email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "Invalid email"})
	}

	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Empty password"})
	}
	return domain.NewValidationError(errs)
}

func validateUpdate(in dto.UpdateCustomerRequest) error {
	return domain.NewValidationError(validateProfile(in.FirstName, in.LastName, in.Income, in.ZipCode, in.Street))
}

// validateProfile campos comunes a alta y actualización.
func validateProfile(firstName, lastName string, income decimal.Decimal, zipCode, street string) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(firstName) == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "Empty first name"})
	}
	if strings.TrimSpace(lastName) == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "Empty last name"})
	}
	if income.IsNegative() || !domain.FitsMoney(income) {
		errs = append(errs, domain.FieldError{Field: "income", Message: "Invalid income"})
	}
	if strings.TrimSpace(zipCode) == "" {
		errs = append(errs, domain.FieldError{Field: "zipCode", Message: "Empty zip code"})
	}
	if strings.TrimSpace(street) == "" {
		errs = append(errs, domain.FieldError{Field: "street", Message: "Empty street"})
	}
	return errs
}

// validEmail exige una dirección simple (sin nombre visible) con dominio.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && at < len(s)-1
}
