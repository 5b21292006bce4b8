package dto

import "github.com/shopspring/decimal"

// Los montos y cantidades son punteros para distinguir "ausente" de cero.

// CreateProductionRequest body de POST /api/production.
type CreateProductionRequest struct {
	Material string           `json:"material" validate:"required"`
	Quantity *decimal.Decimal `json:"quantity" validate:"required,gte=0"`
}

// CreateDispatchRequest body de POST /api/dispatch.
type CreateDispatchRequest struct {
	Truck       string           `json:"truck" validate:"required"`
	Vendor      string           `json:"vendor" validate:"required"`
	Material    string           `json:"material" validate:"required"`
	Quantity    *decimal.Decimal `json:"quantity" validate:"required,gte=0"`
	Destination string           `json:"destination" validate:"required"`
	Rate        *decimal.Decimal `json:"rate" validate:"required,gte=0"`
	Freight     *decimal.Decimal `json:"freight" validate:"required,gte=0"`
}

// CreateSaleRequest body de POST /api/sales. Status vacío = Credit.
type CreateSaleRequest struct {
	Vendor        string           `json:"vendor" validate:"required"`
	Material      string           `json:"material" validate:"required"`
	Quantity      *decimal.Decimal `json:"quantity" validate:"required,gte=0"`
	Rate          *decimal.Decimal `json:"rate" validate:"required,gte=0"`
	PaymentMethod string           `json:"paymentMethod" validate:"required,oneof=Cash UPI Bank"`
	Status        string           `json:"status" validate:"omitempty,oneof=Credit Paid"`
}

// CreateExpenseRequest body de POST /api/expenses.
type CreateExpenseRequest struct {
	ExpenseCategory string           `json:"expenseCategory" validate:"required"`
	Amount          *decimal.Decimal `json:"amount" validate:"required,gte=0"`
}

// CreateMaintenanceRequest body de POST /api/maintenance (JSON o multipart).
// File lo completa el handler con la ruta pública del adjunto.
type CreateMaintenanceRequest struct {
	Equipment string           `json:"equipment" validate:"required"`
	Issue     string           `json:"issue" validate:"required"`
	Cost      *decimal.Decimal `json:"cost" validate:"required,gte=0"`
	Remarks   string           `json:"remarks"`
	File      string           `json:"-"`
}

// PayLedgerRequest body de POST /api/vendor-ledger/pay.
type PayLedgerRequest struct {
	LedgerID string `json:"ledgerId" validate:"required"`
}

// ToggleNotificationsRequest body de POST /api/notifications/toggle.
type ToggleNotificationsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
