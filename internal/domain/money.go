package domain

import "github.com/shopspring/decimal"

// Los montos se guardan como NUMERIC(15, 2).
const (
	MoneyScale       = 2
	moneyIntegerDigs = 13
)

var moneyLimit = decimal.New(1, moneyIntegerDigs)

// FitsMoney indica si d se puede guardar sin redondeo ni desborde: como máximo
// MoneyScale decimales y menos de 10^13 en valor absoluto.
func FitsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale)) && d.Abs().LessThan(moneyLimit)
}
