package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/stonecrusher-api/internal/application/analytics"
)

// DashboardHandler dashboard del día, reportes acumulados, bitácora diaria y exportaciones.
type DashboardHandler struct {
	dashboard *appanalytics.DashboardUseCase
	reports   *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *appanalytics.DashboardUseCase, reports *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, reports: reports}
}

// GetSummary devuelve los totales del día en la zona horaria del negocio.
// partnerShare solo viene calculado para el rol partner. No genera notificaciones.
// @Summary      Resumen del día
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.dashboard.GetSummary(c.Context(), GetRole(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetReport godoc
// @Summary      Reporte acumulado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	out, err := h.reports.GetReport(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportReport godoc
// @Summary      Exportar reporte acumulado
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format  query  string  false  "pdf (default) o xlsx"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *DashboardHandler) ExportReport(c *fiber.Ctx) error {
	out, err := h.reports.ExportReport(c.Context(), c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, out)
}

// GetLogs godoc
// @Summary      Bitácora de un día
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200   {array}   dto.LogEntryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/logs [get]
func (h *DashboardHandler) GetLogs(c *fiber.Ctx) error {
	out, err := h.reports.GetLogs(c.Context(), c.Query("date"))
	return respondList(c, out, err)
}

// ExportLogs godoc
// @Summary      Exportar bitácora de un día (xlsx)
// @Tags         logs
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/logs/export [get]
func (h *DashboardHandler) ExportLogs(c *fiber.Ctx) error {
	out, err := h.reports.ExportLogs(c.Context(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, out)
}

func sendFile(c *fiber.Ctx, f *appanalytics.Export) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+f.Filename+`"`)
	return c.Send(f.Data)
}
