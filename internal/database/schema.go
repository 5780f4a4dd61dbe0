package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/thenoetrevino/phonebook/internal/config"
)

// schemaStatements holds the provisioning DDL per dialect. users.username is
// unique so that find-or-create can use a single conditional insert.
var schemaStatements = map[string][]string{
	config.DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS phonebook (
			name TEXT NOT NULL,
			phone TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_phonebook_name ON phonebook(name)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS user_scores (
			user_id INTEGER NOT NULL REFERENCES users(id),
			score INTEGER NOT NULL,
			level INTEGER NOT NULL
		)`,
	},
	config.DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS phonebook (
			name TEXT NOT NULL,
			phone TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_phonebook_name ON phonebook(name)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS user_scores (
			user_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
	},
}

// EnsureSchema creates the phonebook, users and user_scores tables if they
// do not exist. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, p *Provider) error {
	statements, ok := schemaStatements[p.Dialect()]
	if !ok {
		return errors.Errorf("no schema for driver %q", p.Dialect())
	}

	err := p.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "ensure schema")
	}

	p.logger.Info("schema ensured", "driver", p.Dialect())
	return nil
}
