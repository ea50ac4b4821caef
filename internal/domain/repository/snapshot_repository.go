package repository

import "context"

// SnapshotStore es el puerto de persistencia del snapshot de inventario.
// El blob serializado se lee y reemplaza completo en cada escritura; el
// store es el único dueño del medio durable y no interpreta el contenido.
type SnapshotStore interface {
	// Load devuelve el blob persistido o domain.ErrNoSnapshot si nunca se guardó.
	Load(ctx context.Context) ([]byte, error)
	// Save reemplaza el blob persistido completo.
	Save(ctx context.Context, data []byte) error
}
