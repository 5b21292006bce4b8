package ports

import (
	"context"
	"io"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
)

// Mailer puerto de salida para correo (reset de contraseña, resumen diario).
// Cualquier adaptador (SMTP, log, mock) debe implementar esta interfaz.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// AttachmentStore guarda adjuntos de mantenimiento y devuelve la ruta pública (/uploads/...).
type AttachmentStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// ReportRenderer genera la exportación del reporte acumulado en un formato binario.
type ReportRenderer interface {
	ContentType() string
	Extension() string
	RenderReport(ctx context.Context, report *dto.ReportDTO) ([]byte, error)
}

// LogsRenderer genera la exportación de la bitácora de un día.
type LogsRenderer interface {
	RenderLogs(ctx context.Context, date string, entries []dto.LogEntryDTO) ([]byte, error)
}
