package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"gym_portal/internal/config"
	"gym_portal/internal/infrastructure/persistence"
	"gym_portal/internal/transport/cli"
	"gym_portal/internal/workflow"
	"gym_portal/pkg/application/connectors"
	"gym_portal/pkg/cliio"
)

// Run wires and drives the gym portal: login loop, repositories, workflows,
// menu. It returns once the user disconnects.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	log := newLogger(cfg.Log)
	term := cliio.NewReader(os.Stdin, os.Stdout)

	pg := connectors.Postgres{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		Database: cfg.Postgres.GymDB,
		SSLMode:  cfg.Postgres.SSLMode,
	}

	db, err := Login(ctx, log, pg, term, "MMA Gym Database Login")
	if err != nil {
		return err
	}
	defer pg.Close(db)

	gyms := persistence.NewGymRepository(db)
	fighters := persistence.NewFighterRepository(db)

	wf := cli.Workflows{
		Fighters:     fighters,
		Gyms:         gyms,
		Registration: workflow.NewRegistration(gyms, fighters, term, log),
		Membership:   workflow.NewMembership(persistence.NewMembershipRepository(db), gyms, term, log),
		Commerce:     workflow.NewCommerce(persistence.NewEquipmentRepository(db), fighters, term, log),
		Activity:     workflow.NewActivity(persistence.NewActivityRepository(db), fighters, term, log),
	}

	if err := cli.NewMenu(wf, term, log).Run(ctx); err != nil {
		return err
	}

	term.Printf("Disconnected from database.\n")

	return nil
}

func newLogger(cfg config.Log) *slog.Logger {
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: cfg.Level,
	}))
	slog.SetDefault(log)

	return log
}
