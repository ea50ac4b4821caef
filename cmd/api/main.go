package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/galleops/lux-inventory/docs"
	"github.com/galleops/lux-inventory/internal/application/inventory"
	"github.com/galleops/lux-inventory/internal/domain/repository"
	"github.com/galleops/lux-inventory/internal/infrastructure/storage"
	httpRouter "github.com/galleops/lux-inventory/internal/interfaces/http"
	"github.com/galleops/lux-inventory/pkg/config"
	"github.com/galleops/lux-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore := newStore(ctx, cfg, log)
	defer closeStore()

	policy := inventory.Policy{
		DefaultWarehouseID:    cfg.Inventory.DefaultWarehouse,
		TransferDestinationID: cfg.Inventory.TransferWarehouse,
		AllowNegativeStock:    cfg.Inventory.AllowNegativeStock,
	}
	ledger := inventory.NewService(store, policy)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lux Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{Ledger: ledger})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newStore construye el backend del snapshot según STORAGE_DRIVER. Si el
// medio durable no está disponible, cae a memoria: el proceso arranca con
// el seed y las escrituras no sobreviven al reinicio.
func newStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SnapshotStore, func()) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryStore(), noop
	case "file":
		store, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return fallback(log, err)
		}
		return store, noop
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return fallback(log, err)
		}
		return store, func() { _ = store.Close() }
	case "postgres":
		store, err := storage.NewPostgresStore(ctx, cfg.Storage.ConnectionString())
		if err != nil {
			return fallback(log, err)
		}
		return store, store.Close
	default:
		log.Warn().Str("driver", cfg.Storage.Driver).Msg("driver de storage desconocido, usando memoria")
		return storage.NewMemoryStore(), noop
	}
}

func fallback(log *logger.Logger, err error) (repository.SnapshotStore, func()) {
	log.Error().Err(err).Msg("medio durable no disponible, usando memoria (las escrituras no persisten)")
	return storage.NewMemoryStore(), func() {}
}
