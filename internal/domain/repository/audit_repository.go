package repository

import (
	"context"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// AuditLogRepository bitácora append-only.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// List más reciente primero, con UserEmail resuelto.
	List(ctx context.Context) ([]*entity.AuditLog, error)
}

// NotificationRepository alertas persistidas.
type NotificationRepository interface {
	// CreateIfAbsent inserta salvo que ya exista (Type, DedupKey). Devuelve true si insertó.
	CreateIfAbsent(ctx context.Context, n *entity.Notification) (bool, error)
	// ListEnabled más reciente primero, solo habilitadas.
	ListEnabled(ctx context.Context) ([]*entity.Notification, error)
	// SetEnabledAll cambia el flag en todas las filas y devuelve cuántas tocó.
	SetEnabledAll(ctx context.Context, enabled bool) (int64, error)
}
