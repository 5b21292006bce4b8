package entity

import "time"

// AuditLog entrada append-only de "quién hizo qué". Nunca se modifica ni se borra.
type AuditLog struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	UserID    string    `json:"user"`
	UserEmail string    `json:"userEmail,omitempty"`
	Date      time.Time `json:"date"`
}
