package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/domain/entity"
	"github.com/galleops/lux-inventory/internal/domain/repository"
)

// Policy agrupa las decisiones de negocio configurables del ledger.
// Las bodegas por defecto dejan de ser literales incrustados en la lógica:
// se resuelven aquí y el seed usa los mismos IDs.
type Policy struct {
	DefaultWarehouseID    string // destino/origen implícito de in, out y adjust
	TransferDestinationID string // destino implícito de transfer
	AllowNegativeStock    bool   // permite que out/transfer dejen stock negativo
}

// DefaultPolicy reproduce el comportamiento histórico: W1/W2 y stock
// negativo permitido.
func DefaultPolicy() Policy {
	return Policy{
		DefaultWarehouseID:    "W1",
		TransferDestinationID: "W2",
		AllowNegativeStock:    true,
	}
}

// Service es el motor del ledger de inventario. Cada operación carga el
// snapshot completo desde el store, lo muta en memoria y lo persiste de
// vuelta; el mutex serializa todos los ciclos load-mutate-save para que
// dos mutaciones concurrentes no se pisen la escritura.
type Service struct {
	mu     sync.Mutex
	store  repository.SnapshotStore
	policy Policy
}

// NewService construye el servicio con el store inyectado. Una instancia
// por proceso; no hay singleton oculto.
func NewService(store repository.SnapshotStore, policy Policy) *Service {
	return &Service{store: store, policy: policy}
}

// load obtiene el snapshot actual. En el primer acceso sin estado previo
// siembra el store con los datos iniciales y devuelve esa semilla.
func (s *Service) load(ctx context.Context) (*entity.InventorySnapshot, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSnapshot) {
			snap := seedSnapshot(s.policy, time.Now().UTC())
			if err := s.save(ctx, snap); err != nil {
				return nil, err
			}
			return snap, nil
		}
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}
	var snap entity.InventorySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	return &snap, nil
}

// save persiste el snapshot completo (reemplazo total del blob).
func (s *Service) save(ctx context.Context, snap *entity.InventorySnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	if err := s.store.Save(ctx, data); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	return nil
}

// GetSnapshot devuelve el estado completo del inventario.
func (s *Service) GetSnapshot(ctx context.Context) (*entity.InventorySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// SetCostMethod persiste un nuevo método de costeo global. No recalcula
// retroactivamente los costos ya registrados.
func (s *Service) SetCostMethod(ctx context.Context, method entity.CostMethod) error {
	if !method.Valid() {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	snap.CostMethod = method
	return s.save(ctx, snap)
}

// ListProducts proyección de solo lectura de los productos del snapshot.
func (s *Service) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	snap, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Products, nil
}

// ListWarehouses proyección de solo lectura de las bodegas del snapshot.
func (s *Service) ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	snap, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Warehouses, nil
}

// ListMovements devuelve el historial ordenado por fecha ascendente
// (comparación lexicográfica ISO-8601, orden estable: los empates conservan
// el orden de inserción).
func (s *Service) ListMovements(ctx context.Context) ([]*entity.Movement, error) {
	snap, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	movs := snap.Movements
	sort.SliceStable(movs, func(i, j int) bool {
		return movs[i].Date < movs[j].Date
	})
	return movs, nil
}

// UpsertProduct reemplaza el producto completo si el ID ya existe o lo
// antepone a la lista si es nuevo. Reemplazo total sin validación de campos
// ni merge: lo que llega es lo que queda. Siempre refresca UpdatedAt antes
// de persistir.
func (s *Service) UpsertProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if p == nil {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.New().String()
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	replaced := false
	for i, existing := range snap.Products {
		if existing.ID == p.ID {
			snap.Products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		snap.Products = append([]*entity.Product{p}, snap.Products...)
	}
	if err := s.save(ctx, snap); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct elimina el producto y borra en cascada todos los movimientos
// que lo referencian. Borrado duro, sin tombstone; la operación es
// idempotente (borrar un ID inexistente no es error).
func (s *Service) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	products := snap.Products[:0]
	for _, p := range snap.Products {
		if p.ID != productID {
			products = append(products, p)
		}
	}
	snap.Products = products
	movements := snap.Movements[:0]
	for _, m := range snap.Movements {
		if m.ProductID != productID {
			movements = append(movements, m)
		}
	}
	snap.Movements = movements
	return s.save(ctx, snap)
}
