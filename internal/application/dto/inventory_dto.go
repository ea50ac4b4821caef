package dto

import "github.com/shopspring/decimal"

// Las llaves JSON son camelCase para mantener el contrato con el dashboard
// que ya consume este ledger (mismo formato del blob persistido).

// RegisterMovementRequest body para POST /api/inventory/movements.
// Qty es una magnitud; el signo lo deriva el tipo. UnitCost es opcional:
// en entradas alimenta el promedio ponderado, en ajustes sobrescribe el costo.
type RegisterMovementRequest struct {
	ProductID string           `json:"productId"`
	VariantID string           `json:"variantId"`
	SKU       string           `json:"sku,omitempty"`
	Type      string           `json:"type"`
	Qty       int64            `json:"qty"`
	Date      string           `json:"date,omitempty"`
	FromWh    string           `json:"fromWh,omitempty"`
	ToWh      string           `json:"toWh,omitempty"`
	UnitCost  *decimal.Decimal `json:"unitCost,omitempty"`
	Note      string           `json:"note,omitempty"`
}

// SetCostMethodRequest body para PUT /api/inventory/cost-method.
type SetCostMethodRequest struct {
	Method string `json:"method"`
}

// ValuationResponse agregado de valoración sobre todo el catálogo.
// CostoProm es el promedio ponderado global (distinto del costo propio de
// cada variante); Agotado cuenta variantes habilitadas en o bajo su punto
// de reorden.
type ValuationResponse struct {
	Unidades  int64           `json:"unidades"`
	Valor     decimal.Decimal `json:"valor"`
	CostoProm decimal.Decimal `json:"costoProm"`
	Agotado   int             `json:"agotado"`
}
