package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/galleops/lux-inventory/internal/application/dto"
	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/domain/entity"
	invdomain "github.com/galleops/lux-inventory/internal/domain/inventory"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso
// RegisterMovement. Usar desde handlers HTTP.
func (s *Service) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	m := &entity.Movement{
		Date:      in.Date,
		SKU:       in.SKU,
		VariantID: in.VariantID,
		ProductID: in.ProductID,
		Type:      in.Type,
		Qty:       in.Qty,
		FromWh:    in.FromWh,
		ToWh:      in.ToWh,
		UnitCost:  in.UnitCost,
		Note:      in.Note,
	}
	return s.RegisterMovement(ctx, m)
}

// RegisterMovement aplica un movimiento de stock de forma atómica: valida,
// actualiza existencias y base de costo de la variante, agrega el registro
// inmutable al historial y persiste el snapshot completo.
//
// La validación ocurre antes de cualquier mutación; si falla, no hay efecto
// parcial. El ID del movimiento lo asigna siempre el motor, pisando
// cualquier ID que traiga el caller.
func (s *Service) RegisterMovement(ctx context.Context, m *entity.Movement) (*entity.Movement, error) {
	if m == nil || !entity.ValidMovementType(m.Type) || m.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	// La semántica de "warranty" nunca se definió: el comportamiento
	// histórico era aceptarlo sin tocar stock ni costo. Hasta que producto
	// la aclare, se rechaza en vez de registrar un movimiento sin efecto.
	if m.Type == entity.MovementTypeWarranty {
		return nil, domain.ErrUnsupportedMovement
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	product := snap.FindProduct(m.ProductID)
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	variant := product.FindVariant(m.VariantID)
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}

	switch m.Type {
	case entity.MovementTypeIn:
		s.applyIn(snap, variant, m)
	case entity.MovementTypeOut:
		if err := s.applyOut(snap, variant, m); err != nil {
			return nil, err
		}
	case entity.MovementTypeAdjust:
		s.applyAdjust(variant, m)
	case entity.MovementTypeTransfer:
		if err := s.applyTransfer(variant, m); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	m.ID = uuid.New().String()
	if m.Date == "" {
		m.Date = now.Format(time.RFC3339)
	}
	if m.SKU == "" {
		m.SKU = variant.SKU
	}
	snap.Movements = append(snap.Movements, m)
	product.UpdatedAt = now

	if err := s.save(ctx, snap); err != nil {
		return nil, err
	}
	return m, nil
}

// applyIn suma existencias en la bodega destino. Bajo costeo promedio el
// costo se recalcula ANTES de sumar el stock (el promedio pondera las
// unidades previas contra las que entran); bajo FIFO una entrada no toca
// el costo.
func (s *Service) applyIn(snap *entity.InventorySnapshot, variant *entity.Variant, m *entity.Movement) {
	if snap.CostMethod == entity.CostMethodAvg {
		unitCost := variant.Cost
		if m.UnitCost != nil {
			unitCost = *m.UnitCost
		}
		variant.Cost = invdomain.AverageCost(
			decimal.NewFromInt(variant.TotalStock()),
			variant.Cost,
			decimal.NewFromInt(m.Qty),
			unitCost,
		)
	}
	wh := m.ToWh
	if wh == "" {
		wh = s.policy.DefaultWarehouseID
	}
	variant.AddStock(wh, m.Qty)
}

// applyOut resta existencias de la bodega origen. Bajo FIFO el costo se
// reemplaza por el costo unitario del movimiento si viene informado
// ("último costo", no capas FIFO reales); bajo promedio no cambia.
func (s *Service) applyOut(snap *entity.InventorySnapshot, variant *entity.Variant, m *entity.Movement) error {
	wh := m.FromWh
	if wh == "" {
		wh = s.policy.DefaultWarehouseID
	}
	if !s.policy.AllowNegativeStock && variant.StockByWh[wh] < m.Qty {
		return domain.ErrInsufficientStock
	}
	variant.AddStock(wh, -m.Qty)
	if snap.CostMethod == entity.CostMethodFifo && m.UnitCost != nil {
		variant.Cost = *m.UnitCost
	}
	return nil
}

// applyAdjust suma la magnitud en la bodega resuelta (toWh, luego fromWh,
// luego la bodega por defecto). Si viene costo unitario, incluso cero,
// sobrescribe la base de costo sin importar el método de costeo.
func (s *Service) applyAdjust(variant *entity.Variant, m *entity.Movement) {
	wh := m.ToWh
	if wh == "" {
		wh = m.FromWh
	}
	if wh == "" {
		wh = s.policy.DefaultWarehouseID
	}
	variant.AddStock(wh, m.Qty)
	if m.UnitCost != nil {
		variant.Cost = *m.UnitCost
	}
}

// applyTransfer mueve existencias entre bodegas sin tocar el costo. La suma
// total de existencias de la variante se conserva.
func (s *Service) applyTransfer(variant *entity.Variant, m *entity.Movement) error {
	from := m.FromWh
	if from == "" {
		from = s.policy.DefaultWarehouseID
	}
	to := m.ToWh
	if to == "" {
		to = s.policy.TransferDestinationID
	}
	if !s.policy.AllowNegativeStock && variant.StockByWh[from] < m.Qty {
		return domain.ErrInsufficientStock
	}
	variant.AddStock(from, -m.Qty)
	variant.AddStock(to, m.Qty)
	return nil
}
