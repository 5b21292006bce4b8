// Package pdf genera el reporte acumulado de la planta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la planta  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas / Gastos / Utilidad / Participación socio   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Detalle | Monto                       │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 94, Green: 72, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ ports.ReportRenderer = (*ReportRenderer)(nil)

// ReportRenderer genera el reporte acumulado con Maroto v2.
type ReportRenderer struct {
	title string
	loc   *time.Location
	now   func() time.Time
}

// NewReportRenderer construye el generador. title encabeza el documento.
func NewReportRenderer(title string, loc *time.Location) *ReportRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &ReportRenderer{title: title, loc: loc, now: time.Now}
}

func (g *ReportRenderer) ContentType() string { return "application/pdf" }
func (g *ReportRenderer) Extension() string   { return "pdf" }

// RenderReport genera el PDF y devuelve sus bytes.
func (g *ReportRenderer) RenderReport(_ context.Context, report *dto.ReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title+" - Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range feedRows(report.Feed, g.loc) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReportRenderer) headerRow() core.Row {
	generated := g.now().In(g.loc).Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Business report", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated: "+generated, props.Text{Size: 8, Align: align.Right, Top: 3, Color: colorGray}),
		),
	)
}

// totalsRow: cuatro columnas con los acumulados. La utilidad negativa va en rojo.
func totalsRow(r *dto.ReportDTO) core.Row {
	cell := func(label string, v decimal.Decimal, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(rupees(v), props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Color: c}),
		)
	}
	profitColor := colorPrimary
	if r.Profit.IsNegative() {
		profitColor = colorLoss
	}
	return row.New(16).Add(
		cell("Sales", r.Sales, colorPrimary),
		cell("Expenses", r.Expenses, colorPrimary),
		cell("Profit", r.Profit, profitColor),
		cell("Partner share (20%)", r.PartnerShare, colorPrimary),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Type", 2, align.Left),
		h("Details", 5, align.Left),
		h("Amount", 3, align.Right),
	)
}

func feedRows(feed []dto.FeedEntryDTO, loc *time.Location) []core.Row {
	rows := make([]core.Row, 0, len(feed))
	for _, f := range feed {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(f.Date.In(loc).Format("02/01/2006"), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(f.Type, props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New(f.Details, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(rupees(f.Amount), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

// rupees formatea con prefijo "Rs." porque la fuente base de PDF no trae el glifo ₹.
func rupees(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}
