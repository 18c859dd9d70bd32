package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Los montos viajan como números JSON (10000.5), no como strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
// Details lleva campo -> mensaje en errores de validación.
type ErrorResponse struct {
	Code      string            `json:"code"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Status    int               `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Details   map[string]string `json:"details,omitempty"`
}

const dateLayout = "2006-01-02"

// Date fecha calendario serializada como "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate construye una Date a partir de año, mes y día (UTC).
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON acepta "YYYY-MM-DD" o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q, formato esperado YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// MarshalJSON serializa como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// String devuelve la fecha en formato YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}
