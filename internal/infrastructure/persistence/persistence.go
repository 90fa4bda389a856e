// Package persistence elige el backend de almacenamiento según STORE_DRIVER y expone los repositorios.
package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"github.com/jhoicas/abaya-api/internal/infrastructure/postgres"
	"github.com/jhoicas/abaya-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/abaya-api/pkg/config"
	"github.com/jhoicas/abaya-api/pkg/logger"
)

// Stores repositorios listos para usar más los hooks del backend elegido.
type Stores struct {
	Driver  string
	Users   repository.UserRepository
	Orders  repository.OrderRepository
	Designs repository.DesignRepository

	migrate func(ctx context.Context) error
	ping    func(ctx context.Context) error
	close   func()
}

// Open conecta al backend configurado. No migra: eso lo decide quien llama (Migrate).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		log.Info().Str("driver", cfg.Store.Driver).Msg("almacenamiento listo")
		return &Stores{
			Driver:  cfg.Store.Driver,
			Users:   postgres.NewUserRepository(pool),
			Orders:  postgres.NewOrderRepository(pool),
			Designs: postgres.NewDesignRepository(pool),
			migrate: func(ctx context.Context) error { return postgres.Migrate(ctx, pool, log) },
			ping:    pool.Ping,
			close:   pool.Close,
		}, nil
	case config.StoreDriverSQLite:
		store, err := sqlstore.Open(ctx, cfg.Store.SQLiteDSN)
		if err != nil {
			return nil, fmt.Errorf("abrir SQLite: %w", err)
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("dsn", cfg.Store.SQLiteDSN).Msg("almacenamiento listo")
		return &Stores{
			Driver:  cfg.Store.Driver,
			Users:   store.Users(),
			Orders:  store.Orders(),
			Designs: store.Designs(),
			migrate: store.Migrate,
			ping:    store.Ping,
			close: func() {
				if err := store.Close(); err != nil {
					log.Warn().Err(err).Msg("cerrar SQLite")
				}
			},
		}, nil
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido %q", cfg.Store.Driver)
	}
}

// Migrate aplica el esquema y el relleno de is_delivered. Es idempotente.
func (s *Stores) Migrate(ctx context.Context) error {
	return s.migrate(ctx)
}

// Ping verifica la conexión (health check).
func (s *Stores) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close libera las conexiones.
func (s *Stores) Close() {
	s.close()
}
