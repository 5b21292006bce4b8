package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/finance"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

// DailySummary totales del día usados en la notificación y en el correo a socios.
type DailySummary struct {
	Date         string
	Sales        decimal.Decimal
	Expenses     decimal.Decimal
	Profit       decimal.Decimal
	PartnerShare decimal.Decimal
	// Notification fila creada en esta ejecución; nil si la del día ya existía.
	Notification *entity.Notification
	Recipients   int
}

// SendDailySummary calcula ventas, gastos, utilidad y participación del día en curso,
// persiste una notificación daily_summary (una por fecha) y envía el correo a cada socio.
// Un fallo de correo se registra y no deshace la notificación.
func (s *Service) SendDailySummary(ctx context.Context) (*DailySummary, error) {
	now := s.now().In(s.cfg.Location)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.cfg.Location)
	period := repository.Period{From: start, To: start.AddDate(0, 0, 1)}

	sales, err := s.analytics.SalesTotal(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("resumen diario: ventas: %w", err)
	}
	expenses, err := s.analytics.ExpensesTotal(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("resumen diario: gastos: %w", err)
	}
	profit := finance.Profit(sales, expenses)
	summary := &DailySummary{
		Date:         start.Format("2006-01-02"),
		Sales:        sales,
		Expenses:     expenses,
		Profit:       profit,
		PartnerShare: finance.PartnerShare(profit),
	}

	msg := fmt.Sprintf("Daily summary %s: Sales ₹%s, Expenses ₹%s, Profit ₹%s, Partner share ₹%s",
		summary.Date, sales.StringFixed(2), expenses.StringFixed(2), profit.StringFixed(2), summary.PartnerShare.StringFixed(2))
	n, err := s.create(ctx, entity.NotificationDailySummary, summary.Date, msg)
	if err != nil {
		return nil, err
	}
	summary.Notification = n

	partners, err := s.users.ListByRole(ctx, entity.RolePartner)
	if err != nil {
		s.log.Error().Err(err).Msg("resumen diario: listar socios")
		return summary, nil
	}
	body := summaryBody(summary)
	for _, p := range partners {
		if err := s.mailer.Send(ctx, []string{p.Email}, "Daily Business Summary", body); err != nil {
			s.log.Error().Err(err).Str("to", p.Email).Msg("resumen diario: envío de correo")
			continue
		}
		summary.Recipients++
	}
	s.log.Info().Str("date", summary.Date).Int("recipients", summary.Recipients).Msg("resumen diario enviado")
	return summary, nil
}

func summaryBody(s *DailySummary) string {
	p := message.NewPrinter(language.MustParse("en-IN"))
	amount := func(d decimal.Decimal) string {
		f, _ := d.Float64()
		return p.Sprintf("₹%.2f", f)
	}
	return fmt.Sprintf("Date: %s\nSales: %s\nExpenses: %s\nProfit: %s\nPartner share (20%%): %s\n",
		s.Date, amount(s.Sales), amount(s.Expenses), amount(s.Profit), amount(s.PartnerShare))
}
