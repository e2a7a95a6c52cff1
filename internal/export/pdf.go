package export

import (
	"fmt"
	"time"

	"financeapp/internal/models"
	"financeapp/internal/report"

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
)

// MaxPDFMovements caps the movement table of the PDF summary.
const MaxPDFMovements = 20

var (
	colorPrimary = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorExpense = &props.Color{Red: 220, Green: 38, Blue: 38}
)

// ReportPDF renders an A4 summary: totals, the monthly table and the most
// recent movements (rows are expected newest first).
func ReportPDF(r report.Report, rows []MovementRow, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r))
	m.AddRows(line.NewRow(4))

	m.AddRows(sectionRow("Resumen mensual"))
	m.AddRows(tableHeader([]string{"Mes", "Ingresos", "Egresos", "Balance"}, []int{3, 3, 3, 3}))
	if len(r.MonthlyData) == 0 {
		m.AddRows(emptyRow("Sin movimientos registrados"))
	}
	for _, md := range r.MonthlyData {
		m.AddRows(monthRow(md))
	}
	m.AddRows(line.NewRow(4))

	m.AddRows(sectionRow("Últimos movimientos"))
	m.AddRows(tableHeader([]string{"Fecha", "Concepto", "Tipo", "Monto", "Usuario"}, []int{2, 4, 1, 2, 3}))
	if len(rows) == 0 {
		m.AddRows(emptyRow("Sin movimientos registrados"))
	}
	if len(rows) > MaxPDFMovements {
		rows = rows[:MaxPDFMovements]
	}
	for _, mr := range rows {
		m.AddRows(movementRow(mr))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate report pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("FinanceApp", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Reporte de movimientos", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.UTC().Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(r report.Report) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Top: 2, Color: colorGray}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7}),
		)
	}
	pct := "N/A"
	if r.BalancePercentage != nil {
		pct = fmt.Sprintf("%.1f%%", *r.BalancePercentage)
	}
	return row.New(16).Add(
		cell("Saldo", FormatCurrency(decimal.NewFromFloat(r.Balance))),
		cell("Ingresos", FormatCurrency(decimal.NewFromFloat(r.TotalIncome))),
		cell("Egresos", FormatCurrency(decimal.NewFromFloat(r.TotalExpense))),
		cell(fmt.Sprintf("Movimientos (%d)", r.MovementsCount), pct),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(
			text.New(l, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		))
	}
	return row.New(6).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

func monthRow(md report.MonthlyData) core.Row {
	income := decimal.NewFromFloat(md.Income)
	expense := decimal.NewFromFloat(md.Expense)
	return row.New(6).Add(
		col.New(3).Add(text.New(FormatMonth(md.Month), props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(FormatCurrency(income), props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(FormatCurrency(expense), props.Text{Size: 8, Top: 1, Color: colorExpense})),
		col.New(3).Add(text.New(FormatCurrency(income.Sub(expense)), props.Text{Size: 8, Top: 1})),
	)
}

func movementRow(mr MovementRow) core.Row {
	amount := props.Text{Size: 8, Top: 1}
	if mr.Type == models.MovementExpense {
		amount.Color = colorExpense
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(mr.Date.UTC().Format(dateLayout), props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(mr.Concept, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(mr.Type.Label(), props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(FormatCurrency(mr.Amount), amount)),
		col.New(3).Add(text.New(mr.UserName, props.Text{Size: 8, Top: 1})),
	)
}
