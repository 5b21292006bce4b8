package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un material.
func (r *StockRepo) Get(ctx context.Context, material string) (*entity.Stock, error) {
	query := `SELECT material, quantity, last_updated FROM stock WHERE material = $1`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, material).Scan(&s.Material, &s.Quantity, &s.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// List devuelve todas las existencias ordenadas por material.
func (r *StockRepo) List(ctx context.Context) ([]*entity.Stock, error) {
	rows, err := r.q.Query(ctx, `SELECT material, quantity, last_updated FROM stock ORDER BY material`)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.Material, &s.Quantity, &s.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Increment suma la cantidad; crea la fila si el material aún no tenía stock.
func (r *StockRepo) Increment(ctx context.Context, material string, quantity decimal.Decimal) (*entity.Stock, error) {
	query := `
		INSERT INTO stock (material, quantity, last_updated)
		VALUES ($1, $2, now())
		ON CONFLICT (material)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity, last_updated = now()
		RETURNING material, quantity, last_updated`
	var s entity.Stock
	if err := r.q.QueryRow(ctx, query, material, quantity).Scan(&s.Material, &s.Quantity, &s.LastUpdated); err != nil {
		return nil, fmt.Errorf("increment stock: %w", err)
	}
	return &s, nil
}

// Decrement resta la cantidad en un único UPDATE condicionado a que alcance.
// Cero filas afectadas = existencia insuficiente (o material sin stock).
func (r *StockRepo) Decrement(ctx context.Context, material string, quantity decimal.Decimal) (*entity.Stock, error) {
	query := `
		UPDATE stock SET quantity = quantity - $2, last_updated = now()
		WHERE material = $1 AND quantity >= $2
		RETURNING material, quantity, last_updated`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, material, quantity).Scan(&s.Material, &s.Quantity, &s.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Errorf(domain.ErrInsufficientStock, "Insufficient stock for %s", material)
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	return &s, nil
}
