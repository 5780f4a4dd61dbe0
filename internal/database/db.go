// Package database handles connections to the phonebook store and the SQL
// behind the contact directory and game ledger
package database

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/phonebook/internal/config"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know by default
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Provider opens a fresh database connection for every logical operation.
// It holds only the connection parameters; nothing is pooled between calls.
type Provider struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger
}

// NewProvider creates a connection provider for the given configuration
func NewProvider(cfg config.DatabaseConfig, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{cfg: cfg, logger: logger}
}

// Dialect returns the configured store driver (config.DriverPostgres or config.DriverSQLite)
func (p *Provider) Dialect() string {
	return p.cfg.Driver
}

// driverName maps the configured driver to the registered database/sql driver
func (p *Provider) driverName() string {
	if p.cfg.Driver == config.DriverSQLite {
		return "sqlite"
	}
	return "pgx"
}

// Connect opens and verifies a new connection. Failures wrap models.ErrConnection.
// The caller owns the returned handle and must close it.
func (p *Provider) Connect(ctx context.Context) (*sqlx.DB, error) {
	if p.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.ConnectTimeout)
		defer cancel()
	}

	db, err := sqlx.Open(p.driverName(), p.cfg.DSN())
	if err != nil {
		return nil, connectionError(errors.Wrap(err, "open database"))
	}

	// One connection per operation
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		closeDB(p.logger, db)
		p.logger.Error("database unreachable", "target", p.cfg.Redacted(), "error", err)
		return nil, connectionError(errors.Wrap(err, "database ping failed"))
	}

	p.logger.Debug("connection opened", "target", p.cfg.Redacted())
	return db, nil
}

// closeDB closes a connection and logs, rather than returns, any failure
func closeDB(logger *slog.Logger, db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Error("error closing db", "error", err)
	}
}

// Ping opens a connection, verifies it and closes it again
func (p *Provider) Ping(ctx context.Context) error {
	db, err := p.Connect(ctx)
	if err != nil {
		return err
	}
	closeDB(p.logger, db)
	return nil
}
