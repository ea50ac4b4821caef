package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/domain/repository"
)

var _ repository.SnapshotStore = (*PostgresStore)(nil)

// PostgresStore persiste el blob en una fila única de PostgreSQL. El
// contador de versión sube en cada escritura; la mutación ya llega
// serializada desde el servicio, la versión queda como rastro para detectar
// escrituras perdidas entre procesos.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore crea el pool, verifica conectividad y asegura el esquema.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	schema := `
		CREATE TABLE IF NOT EXISTS inventory_snapshots (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			version    BIGINT NOT NULL DEFAULT 1,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear esquema inventory_snapshots: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Load devuelve el blob bajo la llave conocida o domain.ErrNoSnapshot.
func (s *PostgresStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM inventory_snapshots WHERE key = $1`, SnapshotKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	return data, nil
}

// Save reemplaza el blob y sube el contador de versión.
func (s *PostgresStore) Save(ctx context.Context, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO inventory_snapshots (key, data, version, updated_at)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (key) DO UPDATE SET
			data = EXCLUDED.data,
			version = inventory_snapshots.version + 1,
			updated_at = now()`,
		SnapshotKey, data,
	)
	if err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	return nil
}

// Close libera el pool de conexiones.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
