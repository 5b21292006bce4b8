package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate histórico (append-only) de cambios de tarifa de un material.
type Rate struct {
	ID             string          `json:"id"`
	Material       string          `json:"material"`
	Rate           decimal.Decimal `json:"rate"`
	PreviousRate   decimal.Decimal `json:"previousRate"`
	ChangedBy      string          `json:"changedBy"`
	ChangedByEmail string          `json:"changedByEmail,omitempty"`
	Date           time.Time       `json:"date"`
}
