// Package pdf genera el reporte de tarjetas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del programa  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empleado | Tarjeta | Vence | Estado | Saldo         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Tarjetas activas / Saldo disponible               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/Beneficios-api/internal/application/ports"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

var _ ports.CardReportGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 67, Green: 56, Blue: 202}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// MarotoPDFGenerator implementa ports.CardReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	title string
	now   func() time.Time
}

// NewMarotoPDFGenerator construye el generador. title encabeza cada reporte.
func NewMarotoPDFGenerator(title string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{title: title, now: time.Now}
}

// GenerateCardReport genera el listado de tarjetas y devuelve los bytes del PDF.
func (g *MarotoPDFGenerator) GenerateCardReport(_ context.Context, cards []*entity.Card) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de tarjetas", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(cardRows(cards)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(cards))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Reporte de tarjetas", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Empleado", 4, align.Left),
		h("Número de tarjeta", 3, align.Left),
		h("Vence", 1, align.Center),
		h("Estado", 2, align.Center),
		h("Saldo", 2, align.Right),
	)
}

func cardRows(cards []*entity.Card) []core.Row {
	rows := make([]core.Row, 0, len(cards))
	for _, c := range cards {
		status := props.Text{Size: 8, Align: align.Center, Top: 1}
		if c.Status == entity.StatusBloqueada {
			status.Color = colorRed
		}
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(c.EmployeeName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(MaskCardNumber(c.CardNumber), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(c.ExpirationDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(c.Status, status)),
			col.New(2).Add(text.New(FormatMoney(c.Balance), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(cards []*entity.Card) core.Row {
	active := 0
	total := decimal.Zero
	for _, c := range cards {
		if c.Status == entity.StatusActiva {
			active++
			total = total.Add(c.Balance)
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Color: colorPrimary})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(4).Add(label("Tarjetas activas:"), label("Saldo disponible:")),
		col.New(2).Add(value(fmt.Sprintf("%d de %d", active, len(cards))), value(FormatMoney(total))),
	)
}

// MaskCardNumber deja visibles solo los últimos 4 dígitos.
func MaskCardNumber(number string) string {
	digits := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			digits = append(digits, number[i])
		}
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return "**** **** **** " + string(digits)
}

// FormatMoney formatea un monto con separador de miles y dos decimales.
// Ej: 1250.5 → "$1,250.50"
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i])
	}
	return sign + "$" + string(buf) + "." + frac
}
