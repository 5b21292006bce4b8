package memory

import (
	"context"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var (
	_ repository.ProductionRepository   = (*ProductionRepo)(nil)
	_ repository.DispatchRepository     = (*DispatchRepo)(nil)
	_ repository.SaleRepository         = (*SaleRepo)(nil)
	_ repository.ExpenseRepository      = (*ExpenseRepo)(nil)
	_ repository.MaintenanceRepository  = (*MaintenanceRepo)(nil)
	_ repository.VendorLedgerRepository = (*VendorLedgerRepo)(nil)
)

// ProductionRepo producción en memoria.
type ProductionRepo struct {
	s    *Store
	inTx bool
}

// NewProductionRepository construye el repositorio.
func NewProductionRepository(s *Store) *ProductionRepo { return &ProductionRepo{s: s} }

func (r *ProductionRepo) Create(_ context.Context, p *entity.Production) error {
	return r.s.writeTx(r.inTx, func() error {
		r.s.tx.production = append(r.s.tx.production, clone(p))
		return nil
	})
}

func (r *ProductionRepo) List(_ context.Context) ([]*entity.Production, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.tx.production, func(p *entity.Production) time.Time { return p.Date }), nil
}

// DispatchRepo despachos en memoria.
type DispatchRepo struct {
	s    *Store
	inTx bool
}

// NewDispatchRepository construye el repositorio.
func NewDispatchRepository(s *Store) *DispatchRepo { return &DispatchRepo{s: s} }

func (r *DispatchRepo) Create(_ context.Context, d *entity.Dispatch) error {
	return r.s.writeTx(r.inTx, func() error {
		r.s.tx.dispatches = append(r.s.tx.dispatches, clone(d))
		return nil
	})
}

func (r *DispatchRepo) List(_ context.Context) ([]*entity.Dispatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.tx.dispatches, func(d *entity.Dispatch) time.Time { return d.Date }), nil
}

// SaleRepo ventas en memoria.
type SaleRepo struct {
	s    *Store
	inTx bool
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(s *Store) *SaleRepo { return &SaleRepo{s: s} }

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.s.writeTx(r.inTx, func() error {
		r.s.tx.sales = append(r.s.tx.sales, clone(sale))
		return nil
	})
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sale := range r.s.tx.sales {
		if sale.ID == id {
			return clone(sale), nil
		}
	}
	return nil, nil
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.tx.sales, func(s *entity.Sale) time.Time { return s.Date }), nil
}

func (r *SaleRepo) UpdateStatus(_ context.Context, id, status string) error {
	return r.s.writeTx(r.inTx, func() error {
		for _, sale := range r.s.tx.sales {
			if sale.ID == id {
				sale.Status = status
				return nil
			}
		}
		return domain.Errorf(domain.ErrNotFound, "Sale not found")
	})
}

// ExpenseRepo gastos en memoria.
type ExpenseRepo struct{ s *Store }

// NewExpenseRepository construye el repositorio.
func NewExpenseRepository(s *Store) *ExpenseRepo { return &ExpenseRepo{s: s} }

func (r *ExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses = append(r.s.expenses, clone(e))
	return nil
}

func (r *ExpenseRepo) List(_ context.Context) ([]*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.expenses, func(e *entity.Expense) time.Time { return e.Date }), nil
}

// MaintenanceRepo mantenimientos en memoria.
type MaintenanceRepo struct{ s *Store }

// NewMaintenanceRepository construye el repositorio.
func NewMaintenanceRepository(s *Store) *MaintenanceRepo { return &MaintenanceRepo{s: s} }

func (r *MaintenanceRepo) Create(_ context.Context, m *entity.Maintenance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.maintenance = append(r.s.maintenance, clone(m))
	return nil
}

func (r *MaintenanceRepo) List(_ context.Context) ([]*entity.Maintenance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.maintenance, func(m *entity.Maintenance) time.Time { return m.Date }), nil
}

// VendorLedgerRepo ledger en memoria.
type VendorLedgerRepo struct {
	s    *Store
	inTx bool
}

// NewVendorLedgerRepository construye el repositorio.
func NewVendorLedgerRepository(s *Store) *VendorLedgerRepo { return &VendorLedgerRepo{s: s} }

func (r *VendorLedgerRepo) Create(_ context.Context, e *entity.VendorLedger) error {
	return r.s.writeTx(r.inTx, func() error {
		r.s.tx.ledger = append(r.s.tx.ledger, cloneEntry(e))
		return nil
	})
}

func (r *VendorLedgerRepo) List(_ context.Context) ([]*entity.VendorLedger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := newestFirst(r.s.tx.ledger, func(e *entity.VendorLedger) time.Time { return e.Date })
	for i, e := range out {
		out[i] = cloneEntry(e)
	}
	return out, nil
}

func (r *VendorLedgerRepo) ListByStatus(_ context.Context, status string) ([]*entity.VendorLedger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.VendorLedger
	for _, e := range r.s.tx.ledger {
		if e.Status == status {
			out = append(out, cloneEntry(e))
		}
	}
	return out, nil
}

func (r *VendorLedgerRepo) GetForUpdate(_ context.Context, id string) (*entity.VendorLedger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.tx.ledger {
		if e.ID == id {
			return cloneEntry(e), nil
		}
	}
	return nil, nil
}

func (r *VendorLedgerRepo) MarkPaid(_ context.Context, id string, paidAt time.Time) error {
	return r.s.writeTx(r.inTx, func() error {
		for _, e := range r.s.tx.ledger {
			if e.ID == id {
				e.Status = entity.PaymentStatusPaid
				at := paidAt
				e.PaidAt = &at
				return nil
			}
		}
		return domain.Errorf(domain.ErrNotFound, "Ledger entry not found")
	})
}

func cloneEntry(e *entity.VendorLedger) *entity.VendorLedger {
	c := clone(e)
	if e.PaidAt != nil {
		at := *e.PaidAt
		c.PaidAt = &at
	}
	return c
}
