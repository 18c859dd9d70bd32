package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
)

const header = "first_name;last_name;cpf;email;income;password;zip_code;street\n"

func TestParseCustomers_FilasValidasEInvalidas(t *testing.T) {
	csv := header +
		"Gabriel;Silva;284.759.346-25;Gabriel@Email.com;1500,50;1234;12345;Rua do Gabriel\n" +
		"Ana;Souza;12345678900;ana@email.com;2000;1234;12345;Rua A\n" +
		"Caio;Lima;111.444.777-35;caio@email.com;-1;1234;12345;Rua B\n" +
		"Solo;tres;campos\n" +
		"Gabi;Silva;28475934625;otro@email.com;100;1234;1;Rua C\n"

	rows, skipped, err := parseCustomers([]byte(csv), bcrypt.MinCost)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "28475934625", rows[0].CPF)
	assert.Equal(t, "gabriel@email.com", rows[0].Email)
	assert.Equal(t, "1500.50", rows[0].Income.StringFixed(2))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rows[0].PasswordHash), []byte("1234")))

	require.Len(t, skipped, 4)
	assert.Contains(t, skipped[0], "CPF inválido")
	assert.Contains(t, skipped[1], "ingreso inválido")
	assert.Contains(t, skipped[2], "columnas")
	assert.Contains(t, skipped[3], "repetido")
}

func TestParseCustomers_Latin1(t *testing.T) {
	utf := header + "João;Conceição;28475934625;joao@email.com;1000;1234;12345;Rua São Bento\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(utf)
	require.NoError(t, err)

	rows, _, err := parseCustomers([]byte(latin1), bcrypt.MinCost)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "João", rows[0].FirstName)
	assert.Equal(t, "Rua São Bento", rows[0].Street)
}

func TestWriteSQL_EscapaComillas(t *testing.T) {
	rows, _, err := parseCustomers([]byte(header+"D'Ávila;O'Neil;28475934625;d@email.com;10;1234;1;Rua X\n"), bcrypt.MinCost)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, writeSQL(&b, rows))
	out := b.String()
	assert.Contains(t, out, "'D''Ávila', 'O''Neil', '28475934625', 'd@email.com', 10.00")
	assert.Contains(t, out, "ON CONFLICT DO NOTHING;")
}
