// seed crea las cuentas iniciales (admin, partner, operator) con contraseña bcrypt.
// Las que ya existen se omiten, así que puede ejecutarse más de una vez.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/application/auth"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/mail"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stonecrusher-api/pkg/config"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	tokens := auth.NewTokenService(auth.JWTConfig{Secret: cfg.JWT.Secret}, users)
	uc := auth.NewAuthUseCase(users, tokens, mail.NewLogMailer(log), cfg.App.FrontendURL)

	created, err := uc.Seed(ctx, auth.DefaultAccounts)
	if err != nil {
		log.Fatal().Err(err).Msg("seed de usuarios")
	}
	log.Info().Int("created", created).Int("total", len(auth.DefaultAccounts)).Msg("usuarios sembrados")
}
