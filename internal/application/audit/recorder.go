// Package audit bitácora "quién hizo qué" escrita como efecto secundario de cada escritura.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

// Recorder escribe y lista la bitácora de auditoría.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log.Named("audit")}
}

// Record agrega una entrada. Un fallo de escritura se registra en el log y no se propaga:
// la operación principal ya fue confirmada.
func (r *Recorder) Record(ctx context.Context, userID, action, details string) {
	entry := &entity.AuditLog{
		ID:      uuid.New().String(),
		Action:  action,
		Details: details,
		UserID:  userID,
		Date:    time.Now(),
	}
	// La escritura no depende de que el cliente siga conectado.
	if err := r.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		r.log.Error().Err(err).
			Str("action", action).
			Str("user_id", userID).
			Msg("no se pudo registrar la auditoría")
	}
}

// List devuelve todas las entradas, más reciente primero, con el email del autor.
func (r *Recorder) List(ctx context.Context) ([]*entity.AuditLog, error) {
	return r.repo.List(ctx)
}
