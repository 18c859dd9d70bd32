// Package pdf genera el extracto de un crédito (datos del titular, condiciones y
// plan de cuotas) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Código de crédito + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TITULAR: Nombre / CPF / Email / Dirección                   │
//	│  CONDICIONES: Valor / Cuotas / Primera cuota / Estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Vencimiento | Valor                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + QR con el código del crédito                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appcredit "github.com/jhoicas/Credito-api/internal/application/credit"
	"github.com/jhoicas/Credito-api/internal/domain/entity"
)

var _ appcredit.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa credit.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	issuer string
	now    func() time.Time
}

// NewMarotoStatementGenerator construye el generador. issuer aparece en el encabezado.
func NewMarotoStatementGenerator(issuer string) *MarotoStatementGenerator {
	return &MarotoStatementGenerator{issuer: issuer, now: time.Now}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	credit *entity.Credit,
	customer *entity.Customer,
	schedule []entity.Installment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extracto de crédito "+credit.Code.String(), true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.issuer, credit, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(holderRow(customer))
	m.AddRows(termsRow(credit))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(scheduleRows(schedule)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(credit, schedule))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(issuer string, credit *entity.Credit, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New(issuer, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Extracto de crédito", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(credit.Code.String(), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+now.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func holderRow(customer *entity.Customer) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("TITULAR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New(fmt.Sprintf("CPF: %s   |   Email: %s   |   %s, CEP %s",
				formatCPF(customer.CPF), customer.Email,
				customer.Address.Street, customer.Address.ZipCode,
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func termsRow(credit *entity.Credit) core.Row {
	item := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		)
	}
	return row.New(14).Add(
		item("Valor del crédito", formatMoney(credit.Value), 3),
		item("Cuotas", fmt.Sprintf("%d", credit.Installments), 3),
		item("Primera cuota", credit.FirstInstallment.Format(dateLayout), 3),
		item("Estado", string(credit.Status), 3),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 2, align.Center),
		h("Vencimiento", 5, align.Left),
		h("Valor", 5, align.Right),
	)
}

func scheduleRows(schedule []entity.Installment) []core.Row {
	rows := make([]core.Row, 0, len(schedule))
	for _, in := range schedule {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", in.Number),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(in.DueDate.Format(dateLayout),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(5).Add(text.New(formatMoney(in.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func footerRow(credit *entity.Credit, schedule []entity.Installment) core.Row {
	total := decimal.Zero
	for _, in := range schedule {
		total = total.Add(in.Amount)
	}
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(credit.Code.String(), props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("TOTAL: "+formatMoney(total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 1,
			}),
			text.New("Cuotas sin intereses. El código QR identifica este crédito.", props.Text{
				Size: 7, Align: align.Right, Top: 14, Color: colorGray, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea con separador de miles "." y decimales ",": 10000 → "R$ 10.000,00".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := "R$ " + string(buf) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// formatCPF 28475934625 → 284.759.346-25. Otros largos se devuelven tal cual.
func formatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
}
