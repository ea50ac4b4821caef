package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SQLiteStore)(nil)

// SQLiteStore persiste el blob en una tabla de una sola fila sobre SQLite
// (driver puro Go, sin cgo). Útil para despliegues de un solo binario sin
// PostgreSQL disponible.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore abre (o crea) la base en la ruta indicada y asegura el
// esquema. SQLite no maneja escritores concurrentes: una sola conexión.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			version    INTEGER NOT NULL DEFAULT 1,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema snapshots: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load devuelve el blob bajo la llave conocida o domain.ErrNoSnapshot.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowxContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, SnapshotKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	return data, nil
}

// Save reemplaza el blob y sube el contador de versión.
func (s *SQLiteStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, version, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			data = excluded.data,
			version = snapshots.version + 1,
			updated_at = CURRENT_TIMESTAMP`,
		SnapshotKey, data,
	)
	if err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	return nil
}

// Close cierra la conexión a la base.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
