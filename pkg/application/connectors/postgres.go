package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"

	"gym_portal/pkg/logx"
)

// Postgres opens credentialed connections to one named database. The pool is
// capped at a single connection: the portal is one interactive session.
type Postgres struct {
	Host     string
	Port     int
	Database string
	SSLMode  string
}

func (p Postgres) Connect(ctx context.Context, username, password string) (*sqlx.DB, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.Database,
		RawQuery: "sslmode=" + p.SSLMode,
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn.String())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	slog.Info("postgres connected", slog.String(logx.FieldDatabase, p.Database))

	return db, nil
}

func (p Postgres) Close(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		slog.Error("postgresClient.Close", logx.Error(err))
	}

	slog.Info("postgres disconnected", slog.String(logx.FieldDatabase, p.Database))
}
