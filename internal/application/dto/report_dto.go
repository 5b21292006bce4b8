package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// DashboardDTO respuesta de GET /api/dashboard. Totales del día en la zona horaria del negocio.
// PartnerShare solo se calcula para el rol partner (cero para el resto).
type DashboardDTO struct {
	Production   decimal.Decimal `json:"production"`
	Dispatch     int             `json:"dispatch"`
	Sales        decimal.Decimal `json:"sales"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	PartnerShare decimal.Decimal `json:"partnerShare"`
	Stock        []*entity.Stock `json:"stock"`
	PendingDues  decimal.Decimal `json:"pendingDues"`
	Date         string          `json:"date"`
}

// ReportDTO respuesta de GET /api/reports: acumulados históricos.
type ReportDTO struct {
	Sales        decimal.Decimal `json:"sales"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	PartnerShare decimal.Decimal `json:"partnerShare"`
	Feed         []FeedEntryDTO  `json:"feed"`
}

// FeedEntryDTO venta o gasto en el feed cronológico de reportes.
type FeedEntryDTO struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	Details string          `json:"details"`
	Date    time.Time       `json:"date"`
}

// LogEntryDTO fila de GET /api/logs?date=YYYY-MM-DD.
type LogEntryDTO struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Details   string    `json:"details"`
	UserEmail string    `json:"userEmail"`
	Date      time.Time `json:"date"`
}

// ToggleResponse resultado del switch global de notificaciones.
type ToggleResponse struct {
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
	Updated int64  `json:"updated"`
}
