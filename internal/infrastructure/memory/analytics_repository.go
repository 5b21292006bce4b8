package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados de solo lectura sobre el store en memoria.
type AnalyticsRepo struct{ s *Store }

// NewAnalyticsRepository construye el repositorio.
func NewAnalyticsRepository(s *Store) *AnalyticsRepo { return &AnalyticsRepo{s: s} }

func within(p repository.Period, t time.Time) bool {
	return (p.From.IsZero() || !t.Before(p.From)) && (p.To.IsZero() || t.Before(p.To))
}

func (r *AnalyticsRepo) ProductionTotal(_ context.Context, p repository.Period) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, x := range r.s.tx.production {
		if within(p, x.Date) {
			total = total.Add(x.Quantity)
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) DispatchCount(_ context.Context, p repository.Period) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, x := range r.s.tx.dispatches {
		if within(p, x.Date) {
			n++
		}
	}
	return n, nil
}

func (r *AnalyticsRepo) SalesTotal(_ context.Context, p repository.Period) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, x := range r.s.tx.sales {
		if within(p, x.Date) {
			total = total.Add(x.Total)
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) ExpensesTotal(_ context.Context, p repository.Period) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, x := range r.s.expenses {
		if within(p, x.Date) {
			total = total.Add(x.Amount)
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) OutstandingCredit(_ context.Context) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, e := range r.s.tx.ledger {
		if e.Status == entity.PaymentStatusCredit {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) Activity(_ context.Context, p repository.Period, types ...string) ([]entity.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entity.Activity
	for _, t := range types {
		switch t {
		case entity.ActivityProduction:
			for _, x := range r.s.tx.production {
				if within(p, x.Date) {
					out = append(out, entity.Activity{Type: t, ID: x.ID, Material: x.Material, Quantity: x.Quantity,
						UserEmail: r.s.emailOf(x.CreatedBy), Date: x.Date})
				}
			}
		case entity.ActivityDispatch:
			for _, x := range r.s.tx.dispatches {
				if within(p, x.Date) {
					out = append(out, entity.Activity{Type: t, ID: x.ID, Material: x.Material, Quantity: x.Quantity,
						Amount: x.Total, Label: x.Destination, UserEmail: r.s.emailOf(x.CreatedBy), Date: x.Date})
				}
			}
		case entity.ActivitySale:
			for _, x := range r.s.tx.sales {
				if within(p, x.Date) {
					out = append(out, entity.Activity{Type: t, ID: x.ID, Material: x.Material, Quantity: x.Quantity,
						Amount: x.Total, Label: x.Vendor, UserEmail: r.s.emailOf(x.CreatedBy), Date: x.Date})
				}
			}
		case entity.ActivityExpense:
			for _, x := range r.s.expenses {
				if within(p, x.Date) {
					out = append(out, entity.Activity{Type: t, ID: x.ID, Amount: x.Amount,
						Label: x.ExpenseCategory, UserEmail: r.s.emailOf(x.CreatedBy), Date: x.Date})
				}
			}
		default:
			return nil, fmt.Errorf("analytics.Activity: tipo desconocido %q", t)
		}
	}
	slices.SortStableFunc(out, func(a, b entity.Activity) int { return b.Date.Compare(a.Date) })
	return out, nil
}
