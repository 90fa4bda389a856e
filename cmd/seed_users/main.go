// seed_users crea las cuentas iniciales admin y user si no existen.
//
// Uso: go run ./cmd/seed_users
// La contraseña se toma de SEED_PASSWORD (por defecto 123456); cámbiela después del primer login.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jhoicas/abaya-api/internal/application/auth"
	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/domain"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/infrastructure/persistence"
	"github.com/jhoicas/abaya-api/pkg/config"
	"github.com/jhoicas/abaya-api/pkg/logger"
)

const defaultPassword = "123456"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed_users"})

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = defaultPassword
		log.Warn().Msg("SEED_PASSWORD vacío: se usa la contraseña por defecto")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stores, err := persistence.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer stores.Close()
	if err := stores.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migración")
	}

	authUC := auth.NewAuthUseCase(stores.Users, auth.NewMemoryDenylist(), auth.JWTConfig{Secret: cfg.JWT.Secret})
	for _, acc := range []dto.RegisterRequest{
		{Username: "admin", Password: password, Role: entity.RoleAdmin},
		{Username: "user", Password: password, Role: entity.RoleUser},
	} {
		_, err := authUC.Register(ctx, entity.RoleAdmin, acc)
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			log.Info().Str("username", acc.Username).Msg("ya existe, se omite")
		case err != nil:
			log.Fatal().Err(err).Str("username", acc.Username).Msg("crear usuario")
		default:
			log.Info().Str("username", acc.Username).Str("role", acc.Role).Msg("usuario creado")
		}
	}
}
