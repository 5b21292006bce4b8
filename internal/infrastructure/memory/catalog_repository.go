package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var (
	_ repository.MaterialRepository = (*MaterialRepo)(nil)
	_ repository.TruckRepository    = (*TruckRepo)(nil)
	_ repository.VendorRepository   = (*VendorRepo)(nil)
	_ repository.RateRepository     = (*RateRepo)(nil)
)

// MaterialRepo materiales en memoria.
type MaterialRepo struct {
	s    *Store
	inTx bool
}

// NewMaterialRepository construye el repositorio.
func NewMaterialRepository(s *Store) *MaterialRepo { return &MaterialRepo{s: s} }

func (r *MaterialRepo) Create(_ context.Context, m *entity.Material) error {
	return r.s.writeTx(r.inTx, func() error {
		for _, e := range r.s.tx.materials {
			if e.Name == m.Name {
				return domain.Errorf(domain.ErrDuplicate, "Material %s already exists", m.Name)
			}
		}
		r.s.tx.materials = append(r.s.tx.materials, clone(m))
		return nil
	})
}

func (r *MaterialRepo) GetByName(_ context.Context, name string) (*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.tx.materials {
		if m.Name == name {
			return clone(m), nil
		}
	}
	return nil, nil
}

// GetByNameForUpdate igual que GetByName: la transacción ya tiene el store en exclusiva.
func (r *MaterialRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Material, error) {
	return r.GetByName(ctx, name)
}

func (r *MaterialRepo) UpdateRate(_ context.Context, name string, rate decimal.Decimal) error {
	return r.s.writeTx(r.inTx, func() error {
		for _, m := range r.s.tx.materials {
			if m.Name == name {
				m.Rate = rate
				return nil
			}
		}
		return domain.Errorf(domain.ErrNotFound, "Material %s not found", name)
	})
}

func (r *MaterialRepo) List(_ context.Context) ([]*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := cloneAll(r.s.tx.materials)
	slices.SortFunc(out, func(a, b *entity.Material) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// TruckRepo camiones en memoria.
type TruckRepo struct{ s *Store }

// NewTruckRepository construye el repositorio.
func NewTruckRepository(s *Store) *TruckRepo { return &TruckRepo{s: s} }

func (r *TruckRepo) Create(_ context.Context, t *entity.Truck) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.trucks {
		if e.Number == t.Number {
			return domain.Errorf(domain.ErrDuplicate, "Truck %s already exists", t.Number)
		}
	}
	r.s.trucks = append(r.s.trucks, clone(t))
	return nil
}

func (r *TruckRepo) GetByNumber(_ context.Context, number string) (*entity.Truck, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.trucks {
		if t.Number == number {
			return clone(t), nil
		}
	}
	return nil, nil
}

func (r *TruckRepo) List(_ context.Context) ([]*entity.Truck, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := cloneAll(r.s.trucks)
	slices.SortFunc(out, func(a, b *entity.Truck) int { return strings.Compare(a.Number, b.Number) })
	return out, nil
}

// VendorRepo vendors en memoria.
type VendorRepo struct{ s *Store }

// NewVendorRepository construye el repositorio.
func NewVendorRepository(s *Store) *VendorRepo { return &VendorRepo{s: s} }

func (r *VendorRepo) Create(_ context.Context, v *entity.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.vendors {
		if e.Name == v.Name {
			return domain.Errorf(domain.ErrDuplicate, "Vendor %s already exists", v.Name)
		}
	}
	r.s.vendors = append(r.s.vendors, clone(v))
	return nil
}

func (r *VendorRepo) GetByName(_ context.Context, name string) (*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, v := range r.s.vendors {
		if v.Name == name {
			return clone(v), nil
		}
	}
	return nil, nil
}

func (r *VendorRepo) List(_ context.Context) ([]*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := cloneAll(r.s.vendors)
	slices.SortFunc(out, func(a, b *entity.Vendor) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// RateRepo histórico de tarifas en memoria.
type RateRepo struct {
	s    *Store
	inTx bool
}

// NewRateRepository construye el repositorio.
func NewRateRepository(s *Store) *RateRepo { return &RateRepo{s: s} }

func (r *RateRepo) Create(_ context.Context, rt *entity.Rate) error {
	return r.s.writeTx(r.inTx, func() error {
		r.s.tx.rates = append(r.s.tx.rates, clone(rt))
		return nil
	})
}

func (r *RateRepo) List(_ context.Context) ([]*entity.Rate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := newestFirst(r.s.tx.rates, func(rt *entity.Rate) time.Time { return rt.Date })
	for _, rt := range out {
		rt.ChangedByEmail = r.s.emailOf(rt.ChangedBy)
	}
	return out, nil
}
