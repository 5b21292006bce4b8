// migrate aplica o revierte las migraciones SQL embebidas.
//
// Uso: go run ./cmd/migrate [up|down]
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stonecrusher-api/pkg/config"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	if err := postgres.Migrate(cfg.DB.ConnectionString(), direction); err != nil {
		log.Fatal().Err(err).Str("direction", direction).Msg("migraciones")
	}
	log.Info().Str("direction", direction).Msg("migraciones aplicadas")
}
