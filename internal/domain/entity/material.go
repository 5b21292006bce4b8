package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material agregado que produce la planta (10mm, 20mm, polvo...). Rate es la tarifa vigente.
type Material struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Truck camión propio o contratado para despachos.
type Truck struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"createdAt"`
}

// Vendor cliente/comprador al que se despacha y vende material.
type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
