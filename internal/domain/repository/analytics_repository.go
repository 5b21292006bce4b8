package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// Period intervalo [From, To). Un Period vacío (IsZero) significa "todo el histórico".
type Period struct {
	From time.Time
	To   time.Time
}

// IsZero indica si el período no tiene límites.
func (p Period) IsZero() bool { return p.From.IsZero() && p.To.IsZero() }

// AnalyticsRepository consultas de solo lectura para dashboard, reportes y logs.
// Las implementaciones no modifican datos.
type AnalyticsRepository interface {
	ProductionTotal(ctx context.Context, p Period) (decimal.Decimal, error)
	DispatchCount(ctx context.Context, p Period) (int, error)
	SalesTotal(ctx context.Context, p Period) (decimal.Decimal, error)
	ExpensesTotal(ctx context.Context, p Period) (decimal.Decimal, error)
	// OutstandingCredit suma de entradas del ledger en estado Credit.
	OutstandingCredit(ctx context.Context) (decimal.Decimal, error)
	// Activity devuelve las filas de los tipos indicados en el período, más reciente primero.
	Activity(ctx context.Context, p Period, types ...string) ([]entity.Activity, error)
}
