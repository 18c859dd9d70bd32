package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Credito-api/pkg/cpf"
)

const columns = 8

type seedCustomer struct {
	FirstName    string
	LastName     string
	CPF          string
	Email        string
	Income       decimal.Decimal
	PasswordHash string
	ZipCode      string
	Street       string
}

// parseCustomers decodifica el CSV (ISO-8859-1 si no es UTF-8 válido), valida cada
// fila y hashea el password. Las filas inválidas se devuelven en skipped con su motivo.
func parseCustomers(raw []byte, cost int) (rows []seedCustomer, skipped []string, err error) {
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	r := csv.NewReader(src)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	seen := make(map[string]bool)
	for line := 1; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "first_name") {
			continue
		}
		c, reason := parseRow(rec, cost)
		if reason == "" && (seen["cpf:"+c.CPF] || seen["email:"+c.Email]) {
			reason = "CPF o email repetido en el archivo"
		}
		if reason != "" {
			skipped = append(skipped, fmt.Sprintf("línea %d: %s", line, reason))
			continue
		}
		seen["cpf:"+c.CPF], seen["email:"+c.Email] = true, true
		rows = append(rows, c)
	}
	return rows, skipped, nil
}

func parseRow(rec []string, cost int) (seedCustomer, string) {
	if len(rec) != columns {
		return seedCustomer{}, fmt.Sprintf("se esperaban %d columnas, hay %d", columns, len(rec))
	}
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	c := seedCustomer{
		FirstName: rec[0],
		LastName:  rec[1],
		CPF:       cpf.Normalize(rec[2]),
		Email:     strings.ToLower(rec[3]),
		ZipCode:   rec[6],
		Street:    rec[7],
	}
	if c.FirstName == "" || c.LastName == "" || c.ZipCode == "" || c.Street == "" || rec[5] == "" {
		return c, "campos obligatorios vacíos"
	}
	if err := cpf.Validate(c.CPF); err != nil {
		return c, "CPF inválido"
	}
	if !strings.Contains(c.Email, "@") {
		return c, "email inválido"
	}
	income, err := decimal.NewFromString(strings.ReplaceAll(rec[4], ",", "."))
	if err != nil || income.IsNegative() {
		return c, "ingreso inválido"
	}
	c.Income = income.Round(2)

	hash, err := bcrypt.GenerateFromPassword([]byte(rec[5]), cost)
	if err != nil {
		return c, "password inválido"
	}
	c.PasswordHash = string(hash)
	return c, ""
}

// writeSQL escribe un INSERT idempotente por cliente.
func writeSQL(w io.Writer, rows []seedCustomer) error {
	var b strings.Builder
	b.WriteString("-- Clientes iniciales\n")
	b.WriteString("-- Generado por cmd/seed_customers\n\n")
	for _, c := range rows {
		fmt.Fprintf(&b, "INSERT INTO customers (first_name, last_name, cpf, email, income, password_hash, zip_code, street)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', %s, '%s', '%s', '%s')\n",
			escapeSQL(c.FirstName), escapeSQL(c.LastName), c.CPF, escapeSQL(c.Email),
			c.Income.StringFixed(2), escapeSQL(c.PasswordHash), escapeSQL(c.ZipCode), escapeSQL(c.Street))
		b.WriteString("ON CONFLICT DO NOTHING;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
