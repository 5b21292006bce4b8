package entity

import "time"

// Tipos de notificación.
const (
	NotificationRateChange   = "rate_change"
	NotificationLowStock     = "low_stock"
	NotificationVendorDue    = "vendor_due"
	NotificationDailySummary = "daily_summary"
)

// Notification alerta persistida. (Type, DedupKey) es único: el mismo hecho no se notifica dos veces.
type Notification struct {
	ID       string    `json:"id"`
	Message  string    `json:"message"`
	Type     string    `json:"type"`
	DedupKey string    `json:"-"`
	Enabled  bool      `json:"enabled"`
	UserID   string    `json:"user,omitempty"`
	Date     time.Time `json:"date"`
}
