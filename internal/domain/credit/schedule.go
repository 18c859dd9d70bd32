package credit

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Credito-api/internal/domain/entity"
)

// Schedule calcula el plan de cuotas iguales del crédito (sin intereses).
// Cuota = Value / Installments redondeado a 2 decimales; la última absorbe el residuo
// para que la suma sea exactamente Value. Vencimientos mensuales desde FirstInstallment.
func Schedule(c *entity.Credit) []entity.Installment {
	if c == nil || c.Installments <= 0 {
		return nil
	}
	n := decimal.NewFromInt(int64(c.Installments))
	amount := c.Value.Div(n).Round(2)
	first := DateOf(c.FirstInstallment)

	out := make([]entity.Installment, 0, c.Installments)
	paid := decimal.Zero
	for i := 0; i < c.Installments; i++ {
		a := amount
		if i == c.Installments-1 {
			a = c.Value.Sub(paid)
		}
		paid = paid.Add(a)
		out = append(out, entity.Installment{
			Number:  i + 1,
			DueDate: AddMonths(first, i),
			Amount:  a,
		})
	}
	return out
}
