package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
	"github.com/jhoicas/stonecrusher-api/internal/application/usecase"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
)

// ExpenseHandler gastos y mantenimientos.
type ExpenseHandler struct {
	uc    *usecase.ExpenseUseCase
	files ports.AttachmentStore
}

// NewExpenseHandler construye el handler. files guarda los adjuntos de mantenimiento.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, files ports.AttachmentStore) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, files: files}
}

// CreateExpense godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "expenseCategory, amount"
// @Success      201   {object}  entity.Expense
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateExpense(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpenses godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Expense
// @Router       /api/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	out, err := h.uc.ListExpenses(c.Context())
	return respondList(c, out, err)
}

// CreateMaintenance godoc
// @Summary      Registrar mantenimiento
// @Description  Acepta JSON o multipart/form-data con un adjunto opcional en el campo "file".
// @Tags         maintenance
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        equipment  formData  string  true   "Equipo"
// @Param        issue      formData  string  true   "Falla"
// @Param        cost       formData  number  true   "Costo"
// @Param        remarks    formData  string  false  "Observaciones"
// @Param        file       formData  file    false  "Adjunto"
// @Success      201  {object}  entity.Maintenance
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/maintenance [post]
func (h *ExpenseHandler) CreateMaintenance(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		parsed, err := h.maintenanceForm(c)
		if err != nil {
			return writeError(c, err)
		}
		in = parsed
	} else if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateMaintenance(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// maintenanceForm lee los campos del multipart y guarda el adjunto, si viene.
// El costo se parsea a mano porque el decoder de formularios no conoce decimal.Decimal.
func (h *ExpenseHandler) maintenanceForm(c *fiber.Ctx) (dto.CreateMaintenanceRequest, error) {
	in := dto.CreateMaintenanceRequest{
		Equipment: c.FormValue("equipment"),
		Issue:     c.FormValue("issue"),
		Remarks:   c.FormValue("remarks"),
	}
	if raw := strings.TrimSpace(c.FormValue("cost")); raw != "" {
		cost, err := decimal.NewFromString(raw)
		if err != nil {
			return in, domain.Errorf(domain.ErrValidation, "cost must be a non-negative number")
		}
		in.Cost = &cost
	}
	// Validar antes de escribir el archivo en disco.
	if err := dto.Validate(in); err != nil {
		return in, err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		// Sin adjunto.
		return in, nil
	}
	f, err := fh.Open()
	if err != nil {
		return in, err
	}
	defer f.Close()
	path, err := h.files.Save(c.Context(), fh.Filename, f)
	if err != nil {
		return in, err
	}
	in.File = path
	return in, nil
}

// ListMaintenance godoc
// @Summary      Listar mantenimientos
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Maintenance
// @Router       /api/maintenance [get]
func (h *ExpenseHandler) ListMaintenance(c *fiber.Ctx) error {
	out, err := h.uc.ListMaintenance(c.Context())
	return respondList(c, out, err)
}
