package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de actividad del libro diario (vista de logs y feed de reportes).
const (
	ActivityProduction = "Production"
	ActivityDispatch   = "Dispatch"
	ActivitySale       = "Sale"
	ActivityExpense    = "Expense"
)

// Activity fila de solo lectura que une producción, despachos, ventas y gastos.
// Label es el destino (despacho), el vendor (venta) o la categoría (gasto).
type Activity struct {
	Type      string
	ID        string
	Material  string
	Quantity  decimal.Decimal
	Amount    decimal.Decimal
	Label     string
	UserEmail string
	Date      time.Time
}
