// Package cpf valida el Cadastro de Pessoas Físicas (documento fiscal de 11 dígitos)
// mediante sus dos dígitos verificadores (módulo 11).
package cpf

import (
	"fmt"
	"unicode"
)

// Validate comprueba que cpf (con o sin puntos/guion) tenga 11 dígitos, no sea una
// secuencia repetida ("111.111.111-11") y que ambos dígitos verificadores sean correctos.
// Acepta "284.759.346-25" o "28475934625".
func Validate(cpf string) error {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return fmt.Errorf("cpf: debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("cpf: secuencia repetida no válida")
	}
	first := checkDigit(digits[:9])
	if digits[9] != first {
		return fmt.Errorf("cpf: primer dígito verificador inválido: esperado %c, recibido %c", first, digits[9])
	}
	second := checkDigit(digits[:10])
	if digits[10] != second {
		return fmt.Errorf("cpf: segundo dígito verificador inválido: esperado %c, recibido %c", second, digits[10])
	}
	return nil
}

// Normalize devuelve solo los dígitos del CPF (forma en que se persiste).
func Normalize(cpf string) string {
	return string(extractDigits(cpf))
}

// checkDigit calcula el dígito verificador para base (9 o 10 dígitos).
// Pesos decrecientes desde len(base)+1 hasta 2.
func checkDigit(base []byte) byte {
	var sum int
	weight := len(base) + 1
	for _, d := range base {
		sum += int(d-'0') * weight
		weight--
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
