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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo existencias en memoria.
type StockRepo struct {
	s    *Store
	inTx bool
}

// NewStockRepository construye el repositorio.
func NewStockRepository(s *Store) *StockRepo { return &StockRepo{s: s} }

func (r *StockRepo) Get(_ context.Context, material string) (*entity.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if st, ok := r.s.tx.stock[material]; ok {
		return clone(st), nil
	}
	return nil, nil
}

func (r *StockRepo) List(_ context.Context) ([]*entity.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Stock, 0, len(r.s.tx.stock))
	for _, st := range r.s.tx.stock {
		out = append(out, clone(st))
	}
	slices.SortFunc(out, func(a, b *entity.Stock) int { return strings.Compare(a.Material, b.Material) })
	return out, nil
}

func (r *StockRepo) Increment(_ context.Context, material string, quantity decimal.Decimal) (*entity.Stock, error) {
	var out *entity.Stock
	err := r.s.writeTx(r.inTx, func() error {
		st, ok := r.s.tx.stock[material]
		if !ok {
			st = &entity.Stock{Material: material, Quantity: decimal.Zero}
			r.s.tx.stock[material] = st
		}
		st.Quantity = st.Quantity.Add(quantity)
		st.LastUpdated = time.Now()
		out = clone(st)
		return nil
	})
	return out, err
}

// Decrement comprueba y resta bajo el mismo lock: equivalente al UPDATE condicionado.
func (r *StockRepo) Decrement(_ context.Context, material string, quantity decimal.Decimal) (*entity.Stock, error) {
	var out *entity.Stock
	err := r.s.writeTx(r.inTx, func() error {
		st, ok := r.s.tx.stock[material]
		if !ok || st.Quantity.LessThan(quantity) {
			return domain.Errorf(domain.ErrInsufficientStock, "Insufficient stock for %s", material)
		}
		st.Quantity = st.Quantity.Sub(quantity)
		st.LastUpdated = time.Now()
		out = clone(st)
		return nil
	})
	return out, err
}
