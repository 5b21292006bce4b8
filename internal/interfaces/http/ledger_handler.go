package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/ledger"
)

// LedgerHandler cuentas por cobrar de vendors.
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Listar ledger de vendors
// @Tags         vendor-ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.VendorLedger
// @Router       /api/vendor-ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	return respondList(c, out, err)
}

// Pay godoc
// @Summary      Registrar cobro
// @Description  Pasa la entrada y su venta a Paid. Una entrada ya pagada devuelve 400.
// @Tags         vendor-ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayLedgerRequest  true  "ledgerId"
// @Success      200   {object}  entity.VendorLedger
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendor-ledger/pay [post]
func (h *LedgerHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayLedgerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Pay(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
