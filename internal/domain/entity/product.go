package entity

import "time"

// Product representa una familia de artículos vendibles. Es dueño de sus
// variantes (composición: una variante no sobrevive a su producto).
// UpdatedAt se refresca ante cualquier mutación del producto o sus variantes.
type Product struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Category   string     `json:"category,omitempty"`
	Brand      string     `json:"brand,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Dimensions string     `json:"medidas,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Variants   []*Variant `json:"variants"`
}

// FindVariant busca una variante por ID. Devuelve nil si no existe.
func (p *Product) FindVariant(id string) *Variant {
	for _, v := range p.Variants {
		if v.ID == id {
			return v
		}
	}
	return nil
}
