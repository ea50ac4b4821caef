package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/galleops/lux-inventory/internal/application/dto"
	"github.com/galleops/lux-inventory/internal/application/inventory"
	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del ledger: snapshot, método
// de costeo, movimientos y valoración.
type InventoryHandler struct {
	svc *inventory.Service
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// GetSnapshot godoc
// @Summary      Snapshot completo del inventario
// @Description  Estado completo: bodegas, productos, movimientos y método de costeo.
//
//	En el primer acceso sin estado previo siembra los datos iniciales.
//
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  entity.InventorySnapshot
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/snapshot [get]
func (h *InventoryHandler) GetSnapshot(c *fiber.Ctx) error {
	snap, err := h.svc.GetSnapshot(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(snap)
}

// SetCostMethod godoc
// @Summary      Cambiar el método de costeo global
// @Description  avg (promedio ponderado) o fifo (último costo). No recalcula costos ya registrados.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCostMethodRequest  true  "method: avg | fifo"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/cost-method [put]
func (h *InventoryHandler) SetCostMethod(c *fiber.Ctx) error {
	var in dto.SetCostMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.SetCostMethod(c.Context(), entity.CostMethod(in.Method)); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "método de costeo inválido"})
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"message": "método de costeo actualizado"})
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Description  Todos los movimientos ordenados por fecha ascendente (orden estable).
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   entity.Movement
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movs, err := h.svc.ListMovements(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movs), "movements": movs})
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "productId, variantId, type (in|out|adjust|transfer), qty; fromWh/toWh y unitCost opcionales"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.svc.RegisterMovementFromRequest(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrVariantNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		case errors.Is(err, domain.ErrUnsupportedMovement):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_TYPE", Message: "tipo de movimiento no soportado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// Valuation godoc
// @Summary      Valoración del catálogo
// @Description  Unidades totales, valor a costo, promedio ponderado global y conteo de variantes agotadas.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ValuationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/valuation [get]
func (h *InventoryHandler) Valuation(c *fiber.Ctx) error {
	val, err := h.svc.Valuation(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(val)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
