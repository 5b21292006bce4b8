package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stonecrusher-api/internal/application/audit"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/notification"
)

// NotificationHandler notificaciones y bitácora de auditoría.
type NotificationHandler struct {
	notifications *notification.Service
	audit         *audit.Recorder
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(notifications *notification.Service, audit *audit.Recorder) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, audit: audit}
}

// List godoc
// @Summary      Notificaciones habilitadas
// @Description  Solo lectura. Las alertas se generan al escribir y en el barrido periódico.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Notification
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.notifications.List(c.Context())
	return respondList(c, out, err)
}

// Toggle godoc
// @Summary      Habilitar o deshabilitar todas las notificaciones
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ToggleNotificationsRequest  true  "enabled"
// @Success      200   {object}  dto.ToggleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notifications/toggle [post]
func (h *NotificationHandler) Toggle(c *fiber.Ctx) error {
	var in dto.ToggleNotificationsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	n, err := h.notifications.Toggle(c.Context(), *in.Enabled)
	if err != nil {
		return writeError(c, err)
	}
	msg := "Notifications disabled"
	if *in.Enabled {
		msg = "Notifications enabled"
	}
	h.audit.Record(c.Context(), GetUserID(c), "Notifications Toggled", msg)
	return c.JSON(dto.ToggleResponse{Message: msg, Enabled: *in.Enabled, Updated: n})
}

// AuditLogs godoc
// @Summary      Bitácora de auditoría
// @Tags         audit-logs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.AuditLog
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/audit-logs [get]
func (h *NotificationHandler) AuditLogs(c *fiber.Ctx) error {
	out, err := h.audit.List(c.Context())
	return respondList(c, out, err)
}
