package entity

import "github.com/shopspring/decimal"

// Variant representa un SKU vendible dentro de un producto (multi-bodega).
// Cost es la base de costo unitario vigente, recalculada por el método de
// costeo del snapshot; Price es el precio de venta y nunca se deriva del costo.
// StockByWh mapea bodega -> cantidad; la ausencia de la llave equivale a cero.
type Variant struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Barcode      string           `json:"barcode,omitempty"`
	StockByWh    map[string]int64 `json:"stockByWh"`
	Cost         decimal.Decimal  `json:"cost"`
	Price        decimal.Decimal  `json:"price"`
	ReorderLevel int64            `json:"reorderLevel,omitempty"`
	Enabled      bool             `json:"enabled"`

	// Campos heredados de blobs antiguos; se conservan para que un snapshot
	// previo cargue y se vuelva a guardar sin perder datos.
	MainQty        *int64           `json:"cantidadPrincipal,omitempty"`
	WarrantyQty    *int64           `json:"cantidadGarantias,omitempty"`
	WholesalePrice *decimal.Decimal `json:"precioMayor,omitempty"`
}

// TotalStock suma las existencias de todas las bodegas.
func (v *Variant) TotalStock() int64 {
	var total int64
	for _, qty := range v.StockByWh {
		total += qty
	}
	return total
}

// AddStock suma (o resta, con qty negativo) existencias en la bodega indicada.
func (v *Variant) AddStock(warehouseID string, qty int64) {
	if v.StockByWh == nil {
		v.StockByWh = make(map[string]int64)
	}
	v.StockByWh[warehouseID] += qty
}
