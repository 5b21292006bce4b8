package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para dashboard, reportes y bitácora diaria.
// Los períodos se filtran con ($1 IS NULL OR date >= $1) AND ($2 IS NULL OR date < $2).
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

const periodFilter = `($1::timestamptz IS NULL OR date >= $1) AND ($2::timestamptz IS NULL OR date < $2)`

// ProductionTotal toneladas producidas en el período.
func (r *AnalyticsRepo) ProductionTotal(ctx context.Context, p repository.Period) (decimal.Decimal, error) {
	return r.sum(ctx, "analytics.ProductionTotal",
		`SELECT COALESCE(SUM(quantity), 0) FROM production WHERE `+periodFilter, p)
}

// DispatchCount cantidad de despachos del período.
func (r *AnalyticsRepo) DispatchCount(ctx context.Context, p repository.Period) (int, error) {
	from, to := bounds(p)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM dispatches WHERE `+periodFilter, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.DispatchCount: %w", err)
	}
	return n, nil
}

// SalesTotal suma de totales de venta del período.
func (r *AnalyticsRepo) SalesTotal(ctx context.Context, p repository.Period) (decimal.Decimal, error) {
	return r.sum(ctx, "analytics.SalesTotal",
		`SELECT COALESCE(SUM(total), 0) FROM sales WHERE `+periodFilter, p)
}

// ExpensesTotal suma de gastos del período.
func (r *AnalyticsRepo) ExpensesTotal(ctx context.Context, p repository.Period) (decimal.Decimal, error) {
	return r.sum(ctx, "analytics.ExpensesTotal",
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE `+periodFilter, p)
}

// OutstandingCredit saldo pendiente del ledger.
func (r *AnalyticsRepo) OutstandingCredit(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM vendor_ledger WHERE status = $1`,
		entity.PaymentStatusCredit).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.OutstandingCredit: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepo) sum(ctx context.Context, op, query string, p repository.Period) (decimal.Decimal, error) {
	from, to := bounds(p)
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// activitySources SELECT por tipo con columnas homogéneas para el UNION ALL.
var activitySources = map[string]string{
	entity.ActivityProduction: `
	SELECT 'Production' AS type, t.id::text, t.material, t.quantity, 0::numeric AS amount,
	       ''::text AS label, COALESCE(u.email, '') AS email, t.date
	FROM production t LEFT JOIN users u ON u.id = t.created_by`,
	entity.ActivityDispatch: `
	SELECT 'Dispatch', t.id::text, t.material, t.quantity, t.total, t.destination, COALESCE(u.email, ''), t.date
	FROM dispatches t LEFT JOIN users u ON u.id = t.created_by`,
	entity.ActivitySale: `
	SELECT 'Sale', t.id::text, t.material, t.quantity, t.total, t.vendor, COALESCE(u.email, ''), t.date
	FROM sales t LEFT JOIN users u ON u.id = t.created_by`,
	entity.ActivityExpense: `
	SELECT 'Expense', t.id::text, ''::text, 0::numeric, t.amount, t.expense_category, COALESCE(u.email, ''), t.date
	FROM expenses t LEFT JOIN users u ON u.id = t.created_by`,
}

// Activity une los tipos pedidos del período en un único listado, más reciente primero.
func (r *AnalyticsRepo) Activity(ctx context.Context, p repository.Period, types ...string) ([]entity.Activity, error) {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		src, ok := activitySources[t]
		if !ok {
			return nil, fmt.Errorf("analytics.Activity: tipo desconocido %q", t)
		}
		parts = append(parts, src+`
	WHERE ($1::timestamptz IS NULL OR t.date >= $1) AND ($2::timestamptz IS NULL OR t.date < $2)`)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	query := `SELECT * FROM (` + strings.Join(parts, "\n\tUNION ALL") + `) a ORDER BY a.date DESC`

	from, to := bounds(p)
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.Activity: %w", err)
	}
	defer rows.Close()

	var out []entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.Type, &a.ID, &a.Material, &a.Quantity, &a.Amount, &a.Label, &a.UserEmail, &a.Date); err != nil {
			return nil, fmt.Errorf("analytics.Activity scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
