// Package xlsx exporta reportes y bitácora diaria a Excel con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
)

const (
	reportSheet = "Report"
	logsSheet   = "Logs"
	dateLayout  = "2006-01-02 15:04"
)

var (
	_ ports.ReportRenderer = (*Renderer)(nil)
	_ ports.LogsRenderer   = (*Renderer)(nil)
)

// Renderer genera libros .xlsx para el reporte acumulado y la bitácora.
type Renderer struct {
	loc *time.Location
}

// NewRenderer construye el renderer. Las fechas se escriben en loc.
func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{loc: loc}
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *Renderer) Extension() string { return "xlsx" }

// RenderReport: bloque de totales arriba y feed de ventas/gastos debajo.
func (r *Renderer) RenderReport(_ context.Context, report *dto.ReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := boldStyle(f)
	if err != nil {
		return nil, err
	}

	totals := [][]any{
		{"Sales", number(report.Sales)},
		{"Expenses", number(report.Expenses)},
		{"Profit", number(report.Profit)},
		{"Partner share", number(report.PartnerShare)},
	}
	for i, t := range totals {
		if err := setRow(f, reportSheet, i+1, t); err != nil {
			return nil, err
		}
	}
	_ = f.SetCellStyle(reportSheet, "A1", "A4", bold)

	header := 6
	if err := setRow(f, reportSheet, header, []any{"Date", "Type", "Details", "Amount"}); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(reportSheet, "A6", "D6", bold)
	for i, e := range report.Feed {
		row := []any{e.Date.In(r.loc).Format(dateLayout), e.Type, e.Details, number(e.Amount)}
		if err := setRow(f, reportSheet, header+1+i, row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(reportSheet, "A", "A", 18)
	_ = f.SetColWidth(reportSheet, "C", "C", 48)
	_ = f.SetColWidth(reportSheet, "D", "D", 14)

	return write(f)
}

// RenderLogs una fila por actividad del día, en el orden recibido.
func (r *Renderer) RenderLogs(_ context.Context, date string, entries []dto.LogEntryDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", logsSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := boldStyle(f)
	if err != nil {
		return nil, err
	}

	if err := setRow(f, logsSheet, 1, []any{"Logs for " + date}); err != nil {
		return nil, err
	}
	if err := setRow(f, logsSheet, 3, []any{"Time", "Type", "Details", "User"}); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(logsSheet, "A1", "A1", bold)
	_ = f.SetCellStyle(logsSheet, "A3", "D3", bold)
	for i, e := range entries {
		row := []any{e.Date.In(r.loc).Format(dateLayout), e.Type, e.Details, e.UserEmail}
		if err := setRow(f, logsSheet, 4+i, row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(logsSheet, "A", "A", 18)
	_ = f.SetColWidth(logsSheet, "C", "C", 48)
	_ = f.SetColWidth(logsSheet, "D", "D", 28)

	return write(f)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", row, err)
	}
	return nil
}

func boldStyle(f *excelize.File) (int, error) {
	id, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0, fmt.Errorf("xlsx: estilo: %w", err)
	}
	return id, nil
}

// number escribe el monto como celda numérica; excelize no conoce decimal.Decimal.
func number(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func write(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
