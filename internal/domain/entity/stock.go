package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock existencia actual de un material (una fila por material). Quantity nunca es negativa.
type Stock struct {
	Material    string          `json:"material"`
	Quantity    decimal.Decimal `json:"quantity"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
