package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/inventory"
)

// OperationsHandler producción, despachos, ventas y stock.
type OperationsHandler struct {
	uc *inventory.UseCase
}

// NewOperationsHandler construye el handler.
func NewOperationsHandler(uc *inventory.UseCase) *OperationsHandler {
	return &OperationsHandler{uc: uc}
}

// CreateProduction godoc
// @Summary      Registrar producción
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "material, quantity"
// @Success      201   {object}  entity.Production
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *OperationsHandler) CreateProduction(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordProduction(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProduction godoc
// @Summary      Listar producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Production
// @Router       /api/production [get]
func (h *OperationsHandler) ListProduction(c *fiber.Ctx) error {
	out, err := h.uc.ListProduction(c.Context())
	return respondList(c, out, err)
}

// CreateDispatch godoc
// @Summary      Registrar despacho
// @Description  Descuenta stock; falla con 404 si la existencia no alcanza.
// @Tags         dispatch
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDispatchRequest  true  "Despacho"
// @Success      201   {object}  entity.Dispatch
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dispatch [post]
func (h *OperationsHandler) CreateDispatch(c *fiber.Ctx) error {
	var in dto.CreateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordDispatch(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDispatches godoc
// @Summary      Listar despachos
// @Tags         dispatch
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Dispatch
// @Router       /api/dispatch [get]
func (h *OperationsHandler) ListDispatches(c *fiber.Ctx) error {
	out, err := h.uc.ListDispatches(c.Context())
	return respondList(c, out, err)
}

// CreateSale godoc
// @Summary      Registrar venta
// @Description  Descuenta stock y abre la entrada del ledger con el mismo estado de pago.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      201   {object}  entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *OperationsHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordSale(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSales godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Sale
// @Router       /api/sales [get]
func (h *OperationsHandler) ListSales(c *fiber.Ctx) error {
	out, err := h.uc.ListSales(c.Context())
	return respondList(c, out, err)
}

// GetSale godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  entity.Sale
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *OperationsHandler) GetSale(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListStock godoc
// @Summary      Stock actual por material
// @Description  Solo lectura: consultar el stock no genera alertas.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Stock
// @Router       /api/stock [get]
func (h *OperationsHandler) ListStock(c *fiber.Ctx) error {
	out, err := h.uc.ListStock(c.Context())
	return respondList(c, out, err)
}

// respondList responde la lista (vacía como [] y no null) o el error.
func respondList[T any](c *fiber.Ctx, list []T, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []T{}
	}
	return c.JSON(list)
}
