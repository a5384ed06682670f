// seed carga los datos de ejemplo del panel en PostgreSQL.
//
// Uso: go run ./cmd/seed [--file datos.yaml] [--reset]
// Sin --file usa los datos embebidos. --reset vacía las tablas antes de insertar.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/Beneficios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/seed"
	"github.com/jhoicas/Beneficios-api/pkg/config"
	"github.com/jhoicas/Beneficios-api/pkg/logger"
)

func main() {
	file := pflag.StringP("file", "f", "", "archivo YAML con los datos (por defecto, los embebidos)")
	reset := pflag.Bool("reset", false, "vaciar las tablas antes de insertar")
	pflag.Parse()

	if err := run(*file, *reset); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(file string, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := load(file)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}
	if reset {
		if err := postgres.Reset(ctx, pool); err != nil {
			return err
		}
		log.Info().Msg("tablas vaciadas")
	}

	err = seed.Apply(ctx, f, seed.Repositories{
		Accounts:  postgres.NewAccountRepository(pool),
		Employees: postgres.NewEmployeeRepository(pool),
		Cards:     postgres.NewCardRepository(pool),
		Benefits:  postgres.NewBenefitRepository(pool),
		Roles:     postgres.NewRoleRepository(pool),
	})
	if err != nil {
		return err
	}
	log.Info().
		Int("accounts", len(f.Accounts)).
		Int("employees", len(f.Employees)).
		Int("cards", len(f.Cards)).
		Int("benefits", len(f.Benefits)).
		Int("roles", len(f.Roles)).
		Msg("datos de ejemplo cargados")
	return nil
}

func load(file string) (*seed.Fixtures, error) {
	if file == "" {
		return seed.Default()
	}
	return seed.LoadFile(file)
}
