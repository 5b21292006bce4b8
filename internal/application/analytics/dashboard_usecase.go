// Package analytics contiene los casos de uso de lectura: dashboard del día,
// reportes acumulados, bitácora diaria y sus exportaciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/finance"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del día en curso.
//
// Fuente de datos: AnalyticsRepository y StockRepository (consultas read-only).
// Consultar el dashboard nunca genera notificaciones.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	stockRepo     repository.StockRepository
	loc           *time.Location
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc es la zona horaria del negocio.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, stockRepo repository.StockRepository, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, stockRepo: stockRepo, loc: loc, now: time.Now}
}

// GetSummary construye el DashboardDTO. PartnerShare solo se calcula para el rol partner.
//
// Seis consultas en paralelo:
//  1. ProductionTotal(hoy)
//  2. DispatchCount(hoy)
//  3. SalesTotal(hoy)
//  4. ExpensesTotal(hoy)
//  5. OutstandingCredit()
//  6. Stock actual
func (uc *DashboardUseCase) GetSummary(ctx context.Context, role string) (*dto.DashboardDTO, error) {
	today := dayPeriod(uc.now().In(uc.loc), uc.loc)

	var (
		production, sales, expenses, pending decimal.Decimal
		dispatches                           int
		stock                                []*entity.Stock
	)

	// ── Consultas en paralelo; la primera que falla cancela el resto ─────────
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		production, err = uc.analyticsRepo.ProductionTotal(gctx, today)
		return wrap("producción", err)
	})
	g.Go(func() (err error) {
		dispatches, err = uc.analyticsRepo.DispatchCount(gctx, today)
		return wrap("despachos", err)
	})
	g.Go(func() (err error) {
		sales, err = uc.analyticsRepo.SalesTotal(gctx, today)
		return wrap("ventas", err)
	})
	g.Go(func() (err error) {
		expenses, err = uc.analyticsRepo.ExpensesTotal(gctx, today)
		return wrap("gastos", err)
	})
	g.Go(func() (err error) {
		pending, err = uc.analyticsRepo.OutstandingCredit(gctx)
		return wrap("cobros pendientes", err)
	})
	g.Go(func() (err error) {
		stock, err = uc.stockRepo.List(gctx)
		return wrap("stock", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// ── Construir DTO ─────────────────────────────────────────────────────────
	profit := finance.Profit(sales, expenses)
	share := decimal.Zero
	if role == entity.RolePartner {
		share = finance.PartnerShare(profit)
	}
	if stock == nil {
		stock = []*entity.Stock{}
	}
	return &dto.DashboardDTO{
		Production:   production,
		Dispatch:     dispatches,
		Sales:        sales,
		Expenses:     expenses,
		Profit:       profit,
		PartnerShare: share,
		Stock:        stock,
		PendingDues:  pending,
		Date:         today.From.Format(dateLayout),
	}, nil
}

const dateLayout = "2006-01-02"

// dayPeriod devuelve [00:00, 00:00 del día siguiente) de t en loc.
func dayPeriod(t time.Time, loc *time.Location) repository.Period {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return repository.Period{From: start, To: start.AddDate(0, 0, 1)}
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", what, err)
	}
	return nil
}
