package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/galleops/lux-inventory/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger *inventory.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Ledger)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Upsert)
	products.Delete("/:id", productHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.Ledger)
	warehouses.Get("/", warehouseHandler.List)

	// Inventory: snapshot, costeo, movimientos y valoración
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	invGroup.Get("/snapshot", inventoryHandler.GetSnapshot)
	invGroup.Put("/cost-method", inventoryHandler.SetCostMethod)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/valuation", inventoryHandler.Valuation)
}
