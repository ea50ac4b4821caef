package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/galleops/lux-inventory/internal/application/dto"
)

// Valuation agrega sobre cada variante de cada producto: unidades totales,
// valor a costo, promedio ponderado global (redondeado a unidades enteras
// de moneda) y el conteo de variantes habilitadas en o bajo su punto de
// reorden. Sin desglose por bodega: quien lo necesite recorre stockByWh.
func (s *Service) Valuation(ctx context.Context) (*dto.ValuationResponse, error) {
	snap, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	var unidades int64
	valor := decimal.Zero
	agotado := 0
	for _, p := range snap.Products {
		for _, v := range p.Variants {
			st := v.TotalStock()
			unidades += st
			valor = valor.Add(decimal.NewFromInt(st).Mul(v.Cost))
			// ReorderLevel ausente cuenta como cero
			if v.Enabled && st <= v.ReorderLevel {
				agotado++
			}
		}
	}

	costoProm := decimal.Zero
	if unidades > 0 {
		costoProm = valor.Div(decimal.NewFromInt(unidades)).Round(0)
	}
	return &dto.ValuationResponse{
		Unidades:  unidades,
		Valor:     valor,
		CostoProm: costoProm,
		Agotado:   agotado,
	}, nil
}
