// Package sqlstore implementa los puertos de repositorio con GORM sobre SQLite (desarrollo local y tests).
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store agrupa la conexión GORM y los repositorios que la comparten.
type Store struct {
	db *gorm.DB
}

// Open abre (o crea) la base SQLite indicada por dsn, migra el esquema y corrige registros heredados.
// Con ":memory:" se fija una sola conexión para que todas las consultas vean la misma base.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	}

	s := &Store{db: db}
	if err := s.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// Migrate crea o actualiza las tablas y rellena is_delivered en pedidos anteriores a la bandera.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(&userRecord{}, &designRecord{}, &orderRecord{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := db.Exec(`UPDATE orders SET is_delivered = ? WHERE is_delivered IS NULL`, false).Error; err != nil {
		return fmt.Errorf("backfill is_delivered: %w", err)
	}
	return nil
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{db: s.db} }

// Orders devuelve el repositorio de pedidos.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{db: s.db} }

// Designs devuelve el repositorio de diseños.
func (s *Store) Designs() *DesignRepo { return &DesignRepo{db: s.db} }

// Ping verifica la conexión (health check).
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close cierra la conexión subyacente.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

func orderClause(ascending bool) string {
	if ascending {
		return "created_at ASC, id ASC"
	}
	return "created_at DESC, id ASC"
}
