package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/galleops/lux-inventory/internal/application/dto"
	"github.com/galleops/lux-inventory/internal/application/inventory"
	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/domain/entity"
)

// ProductHandler maneja el ciclo de vida de productos.
type ProductHandler struct {
	svc *inventory.Service
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *inventory.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}   entity.Product
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.svc.ListProducts(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// Upsert godoc
// @Summary      Crear o reemplazar un producto
// @Description  Reemplazo total si el ID existe, creación si no. Sin merge por campo: lo que llega es lo que queda.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Product  true  "producto completo con sus variantes"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Upsert(c *fiber.Ctx) error {
	var p entity.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	saved, err := h.svc.UpsertProduct(c.Context(), &p)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// Delete godoc
// @Summary      Eliminar un producto
// @Description  Elimina el producto y, en cascada, todos sus movimientos. Idempotente.
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.svc.DeleteProduct(c.Context(), id); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}
