package application

import (
	"context"
	"fmt"
	"os"

	"gym_portal/internal/config"
	"gym_portal/internal/infrastructure/persistence"
	"gym_portal/internal/transport/cli"
	"gym_portal/internal/workflow"
	"gym_portal/pkg/application/connectors"
	"gym_portal/pkg/cliio"
)

// RunSpellbook wires and drives the spell catalog portal.
func RunSpellbook(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	log := newLogger(cfg.Log)
	term := cliio.NewReader(os.Stdin, os.Stdout)

	pg := connectors.Postgres{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		Database: cfg.Postgres.SpellDB,
		SSLMode:  cfg.Postgres.SSLMode,
	}

	db, err := Login(ctx, log, pg, term, "Spell Catalog Login")
	if err != nil {
		return err
	}
	defer pg.Close(db)

	catalog := workflow.NewCatalog(persistence.NewSpellRepository(db), term, log)

	if err := cli.NewSpellMenu(catalog, term, log).Run(ctx); err != nil {
		return err
	}

	term.Printf("Disconnected from database.\n")

	return nil
}
