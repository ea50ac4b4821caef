package entity

// CostMethod es la política global de costeo del snapshot.
type CostMethod string

// Métodos de costeo soportados.
const (
	CostMethodAvg  CostMethod = "avg"  // promedio ponderado
	CostMethodFifo CostMethod = "fifo" // "último costo" estilo FIFO
)

// Valid indica si el método pertenece al conjunto soportado.
func (m CostMethod) Valid() bool {
	return m == CostMethodAvg || m == CostMethodFifo
}

// InventorySnapshot es el agregado raíz: todo el estado del inventario se
// carga y persiste como una sola unidad atómica. No hay persistencia parcial
// por entidad. CostMethod aplica a todas las variantes por igual.
type InventorySnapshot struct {
	Warehouses []*Warehouse `json:"warehouses"`
	Products   []*Product   `json:"products"`
	Movements  []*Movement  `json:"movements"`
	CostMethod CostMethod   `json:"costMethod"`
}

// FindProduct busca un producto por ID. Devuelve nil si no existe.
func (s *InventorySnapshot) FindProduct(id string) *Product {
	for _, p := range s.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}
