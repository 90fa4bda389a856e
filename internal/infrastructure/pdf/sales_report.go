// Package pdf genera el reporte de ventas en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + título      │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Pedidos | Total cobrado | Ganancia                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Cant. | Ventas | Ganancia                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Ventas                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/abaya-api/internal/application/analytics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 60, Green: 30, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.SalesReportRenderer = (*SalesReportGenerator)(nil)

// SalesReportGenerator implementa analytics.SalesReportRenderer usando Maroto v2.
type SalesReportGenerator struct{}

// NewSalesReportGenerator construye el generador.
func NewSalesReportGenerator() *SalesReportGenerator { return &SalesReportGenerator{} }

// RenderSalesReport genera el PDF y devuelve sus bytes.
func (g *SalesReportGenerator) RenderSalesReport(_ context.Context, report analytics.SalesReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales report", true).
		WithAuthor(nonEmpty(report.ShopName, "Abaya"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Sales by design"))
	m.AddRows(designHeaderRow())
	m.AddRows(designRows(report)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitle("Monthly sales"))
	m.AddRows(monthlyRows(report)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report analytics.SalesReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(nonEmpty(report.ShopName, "Abaya"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Sales report", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated: "+report.GeneratedAt.UTC().Format("02 Jan 2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func kpiRow(report analytics.SalesReport) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center, Color: colorPrimary}),
		)
	}
	return row.New(16).Add(
		kpi("Orders", fmt.Sprintf("%d", report.OrderCount)),
		kpi("Total collected", formatMoney(report.Summary.Total)),
		kpi("Profit", formatMoney(report.Summary.Profit)),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

func designHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Design", 5, align.Left),
		h("Delivered", 2, align.Center),
		h("Sales", 2, align.Right),
		h("Profit", 3, align.Right),
	)
}

func designRows(report analytics.SalesReport) []core.Row {
	if len(report.Summary.ByDesign) == 0 {
		return []core.Row{emptyRow("No delivered orders yet")}
	}
	rows := make([]core.Row, 0, len(report.Summary.ByDesign))
	for _, d := range report.Summary.ByDesign {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(d.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", d.Count), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(formatMoney(d.TotalSales), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(3).Add(text.New(formatMoney(d.TotalProfit), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func monthlyRows(report analytics.SalesReport) []core.Row {
	if len(report.Monthly) == 0 {
		return []core.Row{emptyRow("No orders yet")}
	}
	rows := make([]core.Row, 0, len(report.Monthly))
	for _, m := range report.Monthly {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(m.Month, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(formatMoney(m.Total), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney dos decimales con separador de miles: 1234567.5 → "1,234,567.50".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	return sign + b.String() + frac
}
