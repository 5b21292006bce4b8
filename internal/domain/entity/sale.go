package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago compartidos por Sale y VendorLedger.
const (
	PaymentStatusCredit = "Credit"
	PaymentStatusPaid   = "Paid"
)

// Medios de pago admitidos en una venta.
const (
	PaymentMethodCash = "Cash"
	PaymentMethodUPI  = "UPI"
	PaymentMethodBank = "Bank"
)

// Sale venta de material a un vendor. Total = Quantity*Rate. Resta del stock.
type Sale struct {
	ID            string          `json:"id"`
	Vendor        string          `json:"vendor"`
	Material      string          `json:"material"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"` // Credit | Paid
	CreatedBy     string          `json:"createdBy"`
	Date          time.Time       `json:"date"`
}

// VendorLedger cuenta por cobrar de una venta. Status pasa de Credit a Paid una sola vez,
// siempre junto con la venta de origen.
type VendorLedger struct {
	ID     string          `json:"id"`
	Vendor string          `json:"vendor"`
	SaleID string          `json:"saleId"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
	Date   time.Time       `json:"date"`
	PaidAt *time.Time      `json:"paidAt,omitempty"`
}
