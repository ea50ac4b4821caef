package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/domain/repository"
)

var _ repository.SnapshotStore = (*FileStore)(nil)

// FileStore persiste el blob como un único archivo JSON. La escritura es
// archivo temporal + rename en el mismo directorio, para que un corte a
// mitad de escritura no deje un snapshot truncado.
type FileStore struct {
	path string
}

// NewFileStore construye el store sobre la ruta indicada. El directorio se
// crea si no existe.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de snapshot: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load lee el archivo completo o domain.ErrNoSnapshot si no existe.
func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	return data, nil
}

// Save reemplaza el archivo de forma atómica.
func (s *FileStore) Save(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar snapshot: %w", err)
	}
	return nil
}
