package entity

import "github.com/shopspring/decimal"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn       = "in"       // entrada
	MovementTypeOut      = "out"      // salida
	MovementTypeAdjust   = "adjust"   // ajuste
	MovementTypeTransfer = "transfer" // traslado entre bodegas
	MovementTypeWarranty = "warranty" // garantía: semántica sin definir, se rechaza
)

// ValidMovementType indica si el tipo pertenece al conjunto cerrado.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjust, MovementTypeTransfer, MovementTypeWarranty:
		return true
	}
	return false
}

// Movement es un registro histórico inmutable: se agrega una vez y nunca se
// edita ni borra, salvo el borrado en cascada junto con su producto.
// Qty es siempre una magnitud >= 0; el signo del efecto lo deriva el tipo.
// Date es la fecha de negocio en ISO-8601; el orden del historial es el orden
// lexicográfico de esta cadena, con empates resueltos por orden de inserción.
type Movement struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	SKU       string           `json:"sku"`
	VariantID string           `json:"variantId"`
	ProductID string           `json:"productId"`
	Type      string           `json:"type"`
	Qty       int64            `json:"qty"`
	FromWh    string           `json:"fromWh,omitempty"`
	ToWh      string           `json:"toWh,omitempty"`
	UnitCost  *decimal.Decimal `json:"unitCost,omitempty"`
	Note      string           `json:"note,omitempty"`
}
