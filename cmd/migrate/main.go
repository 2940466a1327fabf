// migrate aplica o revierte las migraciones embebidas sobre la base configurada
// (DATABASE_URL o DB_HOST/DB_PORT/...).
//
// Uso: go run ./cmd/migrate -op=[up|down|version|force] -steps=[n]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/jhoicas/lager-api/internal/infrastructure/postgres"
	"github.com/jhoicas/lager-api/pkg/config"
	"github.com/jhoicas/lager-api/pkg/logger"
)

func main() {
	op := flag.String("op", "", "operación: up, down, version, force")
	steps := flag.Int("steps", 0, "pasos para up/down (0 = todos); versión para force")
	flag.Parse()

	if *op == "" {
		fmt.Println("Uso: go run ./cmd/migrate -op=[up|down|version|force] -steps=[n]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch *op {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		v, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal().Err(verr).Msg("leer versión")
		}
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("versión del esquema")
		return
	case "force":
		if *steps == 0 {
			log.Fatal().Msg("indicar la versión a forzar con -steps")
		}
		err = m.Force(*steps)
	default:
		log.Fatal().Str("op", *op).Msg("operación desconocida")
	}

	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info().Str("op", *op).Msg("sin cambios")
	case err != nil:
		log.Fatal().Err(err).Str("op", *op).Msg("migración fallida")
	default:
		log.Info().Str("op", *op).Msg("migración aplicada")
	}
}
