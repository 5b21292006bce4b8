package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production toneladas producidas de un material. Suma al stock.
type Production struct {
	ID        string          `json:"id"`
	Material  string          `json:"material"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedBy string          `json:"createdBy"`
	Date      time.Time       `json:"date"`
}

// Dispatch salida de material en camión. Total = Quantity*Rate + Freight. Resta del stock.
type Dispatch struct {
	ID          string          `json:"id"`
	Truck       string          `json:"truck"`
	Vendor      string          `json:"vendor"`
	Material    string          `json:"material"`
	Quantity    decimal.Decimal `json:"quantity"`
	Destination string          `json:"destination"`
	Rate        decimal.Decimal `json:"rate"`
	Freight     decimal.Decimal `json:"freight"`
	Total       decimal.Decimal `json:"total"`
	CreatedBy   string          `json:"createdBy"`
	Date        time.Time       `json:"date"`
}

// Expense gasto operativo (diésel, salarios, repuestos...).
type Expense struct {
	ID              string          `json:"id"`
	ExpenseCategory string          `json:"expenseCategory"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedBy       string          `json:"createdBy"`
	Date            time.Time       `json:"date"`
}

// Maintenance registro de mantenimiento de equipo. File es la ruta pública del adjunto.
type Maintenance struct {
	ID        string          `json:"id"`
	Equipment string          `json:"equipment"`
	Issue     string          `json:"issue"`
	Cost      decimal.Decimal `json:"cost"`
	Remarks   string          `json:"remarks,omitempty"`
	File      string          `json:"file,omitempty"`
	CreatedBy string          `json:"createdBy"`
	Date      time.Time       `json:"date"`
}
