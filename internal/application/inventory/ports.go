package inventory

import (
	"context"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// Alerts eventos que los pipelines emiten tras el commit. Implementado por notification.Service.
// Son best effort: la implementación registra sus propios errores.
type Alerts interface {
	StockChanged(ctx context.Context, material string)
	CreditOpened(ctx context.Context, entry *entity.VendorLedger)
}

// Auditor registra "quién hizo qué". Implementado por audit.Recorder.
type Auditor interface {
	Record(ctx context.Context, userID, action, details string)
}
