package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/finance"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

// Export archivo generado para descarga.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportUseCase reportes acumulados (admin/partner) y bitácora diaria.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	renderers     map[string]ports.ReportRenderer
	logs          ports.LogsRenderer
	loc           *time.Location
}

// NewReportUseCase construye el caso de uso. renderers se indexa por formato ("pdf", "xlsx").
func NewReportUseCase(
	analyticsRepo repository.AnalyticsRepository,
	renderers map[string]ports.ReportRenderer,
	logs ports.LogsRenderer,
	loc *time.Location,
) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{analyticsRepo: analyticsRepo, renderers: renderers, logs: logs, loc: loc}
}

// GetReport totales históricos y feed de ventas y gastos, más reciente primero.
func (uc *ReportUseCase) GetReport(ctx context.Context) (*dto.ReportDTO, error) {
	all := repository.Period{}
	sales, err := uc.analyticsRepo.SalesTotal(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("reporte: ventas: %w", err)
	}
	expenses, err := uc.analyticsRepo.ExpensesTotal(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("reporte: gastos: %w", err)
	}
	rows, err := uc.analyticsRepo.Activity(ctx, all, entity.ActivitySale, entity.ActivityExpense)
	if err != nil {
		return nil, fmt.Errorf("reporte: feed: %w", err)
	}
	feed := make([]dto.FeedEntryDTO, 0, len(rows))
	for _, a := range rows {
		feed = append(feed, dto.FeedEntryDTO{
			Type:    a.Type,
			ID:      a.ID,
			Amount:  a.Amount,
			Details: describe(a),
			Date:    a.Date,
		})
	}
	profit := finance.Profit(sales, expenses)
	return &dto.ReportDTO{
		Sales:        sales,
		Expenses:     expenses,
		Profit:       profit,
		PartnerShare: finance.PartnerShare(profit),
		Feed:         feed,
	}, nil
}

// ExportReport genera el reporte en el formato pedido (pdf por defecto).
func (uc *ReportUseCase) ExportReport(ctx context.Context, format string) (*Export, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "pdf"
	}
	r, ok := uc.renderers[format]
	if !ok {
		return nil, domain.Errorf(domain.ErrValidation, "format must be one of: pdf, xlsx")
	}
	report, err := uc.GetReport(ctx)
	if err != nil {
		return nil, err
	}
	data, err := r.RenderReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("exportar reporte %s: %w", format, err)
	}
	return &Export{Filename: "report." + r.Extension(), ContentType: r.ContentType(), Data: data}, nil
}

// GetLogs producción, despachos, ventas y gastos de un día (YYYY-MM-DD) en la zona del negocio.
func (uc *ReportUseCase) GetLogs(ctx context.Context, date string) ([]dto.LogEntryDTO, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), uc.loc)
	if err != nil {
		return nil, domain.Errorf(domain.ErrValidation, "Valid date (YYYY-MM-DD) is required")
	}
	rows, err := uc.analyticsRepo.Activity(ctx, dayPeriod(day, uc.loc),
		entity.ActivityProduction, entity.ActivityDispatch, entity.ActivitySale, entity.ActivityExpense)
	if err != nil {
		return nil, fmt.Errorf("logs: %w", err)
	}
	out := make([]dto.LogEntryDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, dto.LogEntryDTO{
			Type:      a.Type,
			ID:        a.ID,
			Details:   describe(a),
			UserEmail: a.UserEmail,
			Date:      a.Date,
		})
	}
	return out, nil
}

// ExportLogs genera la hoja de cálculo de la bitácora de un día.
func (uc *ReportUseCase) ExportLogs(ctx context.Context, date string) (*Export, error) {
	entries, err := uc.GetLogs(ctx, date)
	if err != nil {
		return nil, err
	}
	data, err := uc.logs.RenderLogs(ctx, date, entries)
	if err != nil {
		return nil, fmt.Errorf("exportar logs: %w", err)
	}
	return &Export{
		Filename:    "logs-" + date + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

// describe texto legible de una fila de actividad.
func describe(a entity.Activity) string {
	switch a.Type {
	case entity.ActivityProduction:
		return fmt.Sprintf("%s: %s tons", a.Material, a.Quantity)
	case entity.ActivityDispatch:
		return fmt.Sprintf("%s tons of %s to %s", a.Quantity, a.Material, a.Label)
	case entity.ActivitySale:
		return fmt.Sprintf("%s tons of %s to %s for ₹%s", a.Quantity, a.Material, a.Label, a.Amount)
	case entity.ActivityExpense:
		return fmt.Sprintf("%s: ₹%s", a.Label, a.Amount)
	}
	return a.Label
}
