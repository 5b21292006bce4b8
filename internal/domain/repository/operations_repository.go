package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// ProductionRepository registros de producción.
type ProductionRepository interface {
	Create(ctx context.Context, p *entity.Production) error
	List(ctx context.Context) ([]*entity.Production, error)
}

// DispatchRepository registros de despacho.
type DispatchRepository interface {
	Create(ctx context.Context, d *entity.Dispatch) error
	List(ctx context.Context) ([]*entity.Dispatch, error)
}

// SaleRepository ventas. El único cambio permitido tras crear es el estado de pago.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// ExpenseRepository gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	List(ctx context.Context) ([]*entity.Expense, error)
}

// MaintenanceRepository mantenimientos de equipo.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *entity.Maintenance) error
	List(ctx context.Context) ([]*entity.Maintenance, error)
}

// VendorLedgerRepository cuentas por cobrar asociadas a ventas.
type VendorLedgerRepository interface {
	Create(ctx context.Context, e *entity.VendorLedger) error
	List(ctx context.Context) ([]*entity.VendorLedger, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.VendorLedger, error)
	// GetForUpdate bloquea la entrada para el cambio de estado; (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.VendorLedger, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
}
