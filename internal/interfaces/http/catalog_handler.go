package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/usecase"
)

// CatalogHandler materiales, camiones, vendors y tarifas.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
	rates   *usecase.RateUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase, rates *usecase.RateUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, rates: rates}
}

// CreateMaterial godoc
// @Summary      Crear material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "name, rate"
// @Success      201   {object}  entity.Material
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *CatalogHandler) CreateMaterial(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.CreateMaterial(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMaterials godoc
// @Summary      Listar materiales
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Material
// @Router       /api/materials [get]
func (h *CatalogHandler) ListMaterials(c *fiber.Ctx) error {
	out, err := h.catalog.ListMaterials(c.Context())
	return respondList(c, out, err)
}

// CreateTruck godoc
// @Summary      Registrar camión
// @Tags         trucks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTruckRequest  true  "number"
// @Success      201   {object}  entity.Truck
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trucks [post]
func (h *CatalogHandler) CreateTruck(c *fiber.Ctx) error {
	var in dto.CreateTruckRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.CreateTruck(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTrucks godoc
// @Summary      Listar camiones
// @Tags         trucks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Truck
// @Router       /api/trucks [get]
func (h *CatalogHandler) ListTrucks(c *fiber.Ctx) error {
	out, err := h.catalog.ListTrucks(c.Context())
	return respondList(c, out, err)
}

// CreateVendor godoc
// @Summary      Registrar vendor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendorRequest  true  "name"
// @Success      201   {object}  entity.Vendor
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendors [post]
func (h *CatalogHandler) CreateVendor(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.CreateVendor(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListVendors godoc
// @Summary      Listar vendors
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Vendor
// @Router       /api/vendors [get]
func (h *CatalogHandler) ListVendors(c *fiber.Ctx) error {
	out, err := h.catalog.ListVendors(c.Context())
	return respondList(c, out, err)
}

// UpdateRate godoc
// @Summary      Cambiar tarifa de un material
// @Description  Guarda el histórico con la tarifa anterior y emite una notificación rate_change.
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateRateRequest  true  "material, rate"
// @Success      201   {object}  entity.Rate
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rates [post]
func (h *CatalogHandler) UpdateRate(c *fiber.Ctx) error {
	var in dto.UpdateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.rates.UpdateRate(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRates godoc
// @Summary      Histórico de tarifas
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Rate
// @Router       /api/rates [get]
func (h *CatalogHandler) ListRates(c *fiber.Ctx) error {
	out, err := h.rates.ListRates(c.Context())
	return respondList(c, out, err)
}
