package application

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"gym_portal/pkg/application/connectors"
	"gym_portal/pkg/cliio"
	"gym_portal/pkg/logx"
)

// Login prompts for credentials until a connection succeeds. A failed attempt
// is reported and retried; the loop ends only on success or when the context
// is cancelled. The password never reaches the logger.
func Login(ctx context.Context, log *slog.Logger, pg connectors.Postgres, term *cliio.Reader, banner string) (*sqlx.DB, error) {
	for {
		term.Printf("\n----- %s -----\n", banner)

		username, err := term.ReadLine(ctx, "Enter username: ")
		if err != nil {
			return nil, err
		}
		password, err := term.ReadPassword(ctx, "Enter password: ")
		if err != nil {
			return nil, err
		}

		db, err := pg.Connect(ctx, username, password)
		if err != nil {
			log.Warn("connection attempt failed",
				slog.String(logx.FieldUsername, username),
				logx.Error(err),
			)
			term.Printf("Error connecting to database: %v\n", err)
			term.Printf("Invalid credentials. Please try again.\n\n")
			continue
		}

		term.Printf("Successfully connected to the database!\n\n")

		return db, nil
	}
}
