package dto

import "github.com/shopspring/decimal"

// CreateMaterialRequest body de POST /api/materials.
type CreateMaterialRequest struct {
	Name string           `json:"name" validate:"required"`
	Rate *decimal.Decimal `json:"rate" validate:"required,gte=0"`
}

// CreateTruckRequest body de POST /api/trucks.
type CreateTruckRequest struct {
	Number string `json:"number" validate:"required"`
}

// CreateVendorRequest body de POST /api/vendors.
type CreateVendorRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateRateRequest body de POST /api/rates.
type UpdateRateRequest struct {
	Material string           `json:"material" validate:"required"`
	Rate     *decimal.Decimal `json:"rate" validate:"required,gte=0"`
}
