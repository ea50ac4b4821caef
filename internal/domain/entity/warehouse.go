package entity

// Warehouse representa una bodega o sucursal donde se almacena inventario.
// Entidad de referencia: se crea al sembrar el snapshot y rara vez cambia.
type Warehouse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
