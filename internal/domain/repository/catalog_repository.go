package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// MaterialRepository catálogo de materiales con su tarifa vigente.
// Create devuelve domain.ErrDuplicate si el nombre ya existe.
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	GetByName(ctx context.Context, name string) (*entity.Material, error)
	// GetByNameForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una transacción.
	GetByNameForUpdate(ctx context.Context, name string) (*entity.Material, error)
	UpdateRate(ctx context.Context, name string, rate decimal.Decimal) error
	List(ctx context.Context) ([]*entity.Material, error)
}

// TruckRepository catálogo de camiones (number único).
type TruckRepository interface {
	Create(ctx context.Context, t *entity.Truck) error
	GetByNumber(ctx context.Context, number string) (*entity.Truck, error)
	List(ctx context.Context) ([]*entity.Truck, error)
}

// VendorRepository catálogo de vendors (name único).
type VendorRepository interface {
	Create(ctx context.Context, v *entity.Vendor) error
	GetByName(ctx context.Context, name string) (*entity.Vendor, error)
	List(ctx context.Context) ([]*entity.Vendor, error)
}

// RateRepository histórico append-only de tarifas.
type RateRepository interface {
	Create(ctx context.Context, r *entity.Rate) error
	// List devuelve el histórico más reciente primero con ChangedByEmail resuelto.
	List(ctx context.Context) ([]*entity.Rate, error)
}
