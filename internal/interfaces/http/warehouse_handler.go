package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/galleops/lux-inventory/internal/application/inventory"
)

// WarehouseHandler expone las bodegas del snapshot (solo lectura; las
// bodegas se crean con el seed).
type WarehouseHandler struct {
	svc *inventory.Service
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(svc *inventory.Service) *WarehouseHandler {
	return &WarehouseHandler{svc: svc}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	warehouses, err := h.svc.ListWarehouses(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(warehouses), "warehouses": warehouses})
}
