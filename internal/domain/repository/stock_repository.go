package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// StockRepository existencias por material. Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve (nil, nil) si el material nunca tuvo stock.
	Get(ctx context.Context, material string) (*entity.Stock, error)
	List(ctx context.Context) ([]*entity.Stock, error)
	// Increment suma quantity; crea la fila en el primer uso (upsert).
	Increment(ctx context.Context, material string, quantity decimal.Decimal) (*entity.Stock, error)
	// Decrement resta quantity solo si hay existencia suficiente, en una única operación atómica.
	// Devuelve domain.ErrInsufficientStock sin modificar nada si no alcanza.
	Decrement(ctx context.Context, material string, quantity decimal.Decimal) (*entity.Stock, error)
}
