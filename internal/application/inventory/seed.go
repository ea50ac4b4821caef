package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/galleops/lux-inventory/internal/domain/entity"
)

// seedSnapshot construye el estado inicial del inventario: dos bodegas (las
// mismas que la política usa como defaults) y dos productos de demostración.
// Se persiste una sola vez, en el primer acceso sin estado previo.
func seedSnapshot(policy Policy, now time.Time) *entity.InventorySnapshot {
	chain := &entity.Product{
		ID:        uuid.New().String(),
		Name:      "Cadena de Oro 18k",
		Category:  "Cadenas",
		Brand:     "GALLE",
		Notes:     "Best seller",
		CreatedAt: now,
		UpdatedAt: now,
		Variants: []*entity.Variant{
			{
				ID:      uuid.New().String(),
				Name:    "45cm / Dorado",
				SKU:     "CAD-18K-45-DOR",
				Barcode: "7701234560001",
				StockByWh: map[string]int64{
					policy.DefaultWarehouseID:    22,
					policy.TransferDestinationID: 8,
				},
				Cost:         decimal.NewFromInt(120000),
				Price:        decimal.NewFromInt(180000),
				ReorderLevel: 10,
				Enabled:      true,
			},
		},
	}
	earrings := &entity.Product{
		ID:        uuid.New().String(),
		Name:      "Aretes de Oro laminado",
		Category:  "Aretes",
		Brand:     "GALLE",
		CreatedAt: now,
		UpdatedAt: now,
		Variants: []*entity.Variant{
			{
				ID:      uuid.New().String(),
				Name:    "Única / Dorado",
				SKU:     "ARE-LAM-UNI-DOR",
				Barcode: "7701234560002",
				StockByWh: map[string]int64{
					policy.DefaultWarehouseID:    6,
					policy.TransferDestinationID: 0,
				},
				Cost:         decimal.NewFromInt(65000),
				Price:        decimal.NewFromInt(98000),
				ReorderLevel: 5,
				Enabled:      true,
			},
		},
	}

	return &entity.InventorySnapshot{
		Warehouses: []*entity.Warehouse{
			{ID: policy.DefaultWarehouseID, Name: "Principal"},
			{ID: policy.TransferDestinationID, Name: "Secundaria"},
		},
		Products:   []*entity.Product{chain, earrings},
		Movements:  []*entity.Movement{},
		CostMethod: entity.CostMethodAvg,
	}
}
