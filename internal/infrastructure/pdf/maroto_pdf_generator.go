// Package pdf genera la exportación imprimible del reporte de pérdidas y ganancias.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: EasyPalm + título   │  Período + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Ingresos | Costo de ventas | Utilidad bruta      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
//
// Las fuentes estándar de PDF no cubren el alfabeto tailandés, así que las
// etiquetas del documento van en inglés.
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var _ ports.ProfitLossPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ProfitLossPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	amounts *aggregate.AmountFormatter
}

// NewMarotoPDFGenerator construye el generador; locale define los separadores de miles.
func NewMarotoPDFGenerator(locale string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{amounts: aggregate.NewAmountFormatter(locale)}
}

// GenerateProfitLossPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProfitLossPDF(
	_ context.Context,
	report *entity.ProfitLossReport,
	generatedAt time.Time,
) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Profit & Loss Report", true).
		WithAuthor("EasyPalm", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(6))
	m.AddRows(g.figureRow("Total revenue", report.TotalRevenue, false))
	m.AddRows(g.figureRow("Cost of goods sold", report.TotalCOGS, false))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.figureRow("Gross profit", report.GrossProfit, true))
	m.AddRows(row.New(10))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *entity.ProfitLossReport, generatedAt time.Time) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("EasyPalm", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
			text.New("Profit & Loss Report", props.Text{
				Size: 10, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERIOD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.StartDate+"  to  "+report.EndDate, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
			text.New("Generated "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// figureRow una cifra del reporte; con toned las negativas se pintan como advertencia.
func (g *MarotoPDFGenerator) figureRow(label string, v decimal.Decimal, toned bool) core.Row {
	valueProps := props.Text{Size: 11, Align: align.Right, Top: 2, Right: 1}
	labelProps := props.Text{Size: 11, Top: 2, Left: 1}
	if toned {
		valueProps.Style = fontstyle.Bold
		labelProps.Style = fontstyle.Bold
		valueProps.Color = colorPrimary
		if aggregate.ProfitTone(v) == aggregate.ToneWarning {
			valueProps.Color = colorWarning
		}
	}
	return row.New(10).Add(
		col.New(7).Add(text.New(label, labelProps)),
		col.New(5).Add(text.New(g.amounts.Format(v)+" THB", valueProps)),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Figures as reported by the EasyPalm backend for the selected period. "+
				"Gross profit = total revenue - cost of goods sold.",
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	))
}
