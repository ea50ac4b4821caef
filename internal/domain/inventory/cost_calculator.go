package inventory

import "github.com/shopspring/decimal"

// AverageCost implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = round((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// redondeado a unidades enteras de moneda (sin centavos fraccionarios).
// Si el total resultante es <= 0 (posible con stock negativo), el costo no cambia.
func AverageCost(currentStock, currentCost, qtyIn, unitCost decimal.Decimal) decimal.Decimal {
	sum := currentStock.Add(qtyIn)
	if sum.LessThanOrEqual(decimal.Zero) {
		return currentCost
	}
	num := currentStock.Mul(currentCost).Add(qtyIn.Mul(unitCost))
	return num.Div(sum).Round(0)
}
