package memory

import (
	"context"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var (
	_ repository.AuditLogRepository     = (*AuditLogRepo)(nil)
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
)

// AuditLogRepo bitácora en memoria (append-only).
type AuditLogRepo struct{ s *Store }

// NewAuditLogRepository construye el repositorio.
func NewAuditLogRepository(s *Store) *AuditLogRepo { return &AuditLogRepo{s: s} }

func (r *AuditLogRepo) Create(_ context.Context, l *entity.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.auditLogs = append(r.s.auditLogs, clone(l))
	return nil
}

func (r *AuditLogRepo) List(_ context.Context) ([]*entity.AuditLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := newestFirst(r.s.auditLogs, func(l *entity.AuditLog) time.Time { return l.Date })
	for _, l := range out {
		l.UserEmail = r.s.emailOf(l.UserID)
	}
	return out, nil
}

// NotificationRepo notificaciones en memoria con deduplicación por (Type, DedupKey).
type NotificationRepo struct{ s *Store }

// NewNotificationRepository construye el repositorio.
func NewNotificationRepository(s *Store) *NotificationRepo { return &NotificationRepo{s: s} }

func (r *NotificationRepo) CreateIfAbsent(_ context.Context, n *entity.Notification) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.notifications {
		if e.Type == n.Type && e.DedupKey == n.DedupKey {
			return false, nil
		}
	}
	r.s.notifications = append(r.s.notifications, clone(n))
	return true, nil
}

func (r *NotificationRepo) ListEnabled(_ context.Context) ([]*entity.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var enabled []*entity.Notification
	for _, n := range r.s.notifications {
		if n.Enabled {
			enabled = append(enabled, n)
		}
	}
	return newestFirst(enabled, func(n *entity.Notification) time.Time { return n.Date }), nil
}

func (r *NotificationRepo) SetEnabledAll(_ context.Context, enabled bool) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		n.Enabled = enabled
	}
	return int64(len(r.s.notifications)), nil
}
