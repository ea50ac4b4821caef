package storage

import (
	"context"
	"sync"

	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/domain/repository"
)

var _ repository.SnapshotStore = (*MemoryStore)(nil)

// MemoryStore guarda el blob en memoria. Es el fallback cuando no hay medio
// durable disponible: el proceso arranca con el seed y las escrituras no
// sobreviven al reinicio. También es el store de los tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore construye el store vacío (sin snapshot persistido).
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load devuelve una copia del blob o domain.ErrNoSnapshot si nunca se guardó.
func (s *MemoryStore) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, domain.ErrNoSnapshot
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Save reemplaza el blob completo.
func (s *MemoryStore) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}
