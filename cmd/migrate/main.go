// Comando migrate: crea el esquema y rellena is_delivered=false en pedidos heredados.
package main

import (
	"context"
	"time"

	"github.com/jhoicas/abaya-api/internal/infrastructure/persistence"
	"github.com/jhoicas/abaya-api/pkg/config"
	"github.com/jhoicas/abaya-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stores, err := persistence.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer stores.Close()

	if err := stores.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migración")
	}
	log.Info().Str("driver", stores.Driver).Msg("migración completada")
}
