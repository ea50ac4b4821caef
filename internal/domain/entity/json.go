package entity

import "github.com/shopspring/decimal"

// El blob persistido y el dashboard esperan números JSON en los campos de
// dinero (cost, price, unitCost, valor...); shopspring/decimal serializa
// con comillas por defecto, lo que cambiaría el contrato de salida.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
