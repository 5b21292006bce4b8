package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var (
	_ repository.AuditLogRepository     = (*AuditLogRepo)(nil)
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
)

// AuditLogRepo bitácora de auditoría (solo INSERT y SELECT).
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create agrega una entrada.
func (r *AuditLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO audit_logs (id, action, details, user_id, date) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Action, l.Details, l.UserID, l.Date)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List más reciente primero con el email del autor.
func (r *AuditLogRepo) List(ctx context.Context) ([]*entity.AuditLog, error) {
	rows, err := r.q.Query(ctx, `
		SELECT a.id, a.action, a.details, a.user_id, COALESCE(u.email, ''), a.date
		FROM audit_logs a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.Action, &l.Details, &l.UserID, &l.UserEmail, &l.Date); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// NotificationRepo notificaciones con deduplicación por (type, dedup_key).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// CreateIfAbsent inserta salvo conflicto en (type, dedup_key). Devuelve true si insertó.
func (r *NotificationRepo) CreateIfAbsent(ctx context.Context, n *entity.Notification) (bool, error) {
	var userID *string
	if n.UserID != "" {
		userID = &n.UserID
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO notifications (id, message, type, dedup_key, enabled, user_id, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (type, dedup_key) DO NOTHING`,
		n.ID, n.Message, n.Type, n.DedupKey, n.Enabled, userID, n.Date)
	if err != nil {
		return false, fmt.Errorf("insert notification: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListEnabled más reciente primero.
func (r *NotificationRepo) ListEnabled(ctx context.Context) ([]*entity.Notification, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, message, type, dedup_key, enabled, COALESCE(user_id::text, ''), date
		FROM notifications WHERE enabled ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Type, &n.DedupKey, &n.Enabled, &n.UserID, &n.Date); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// SetEnabledAll cambia el flag de todas las filas.
func (r *NotificationRepo) SetEnabledAll(ctx context.Context, enabled bool) (int64, error) {
	tag, err := r.q.Exec(ctx, `UPDATE notifications SET enabled = $1`, enabled)
	if err != nil {
		return 0, fmt.Errorf("toggle notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
