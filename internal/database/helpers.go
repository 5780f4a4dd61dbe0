package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// withConn opens a connection, runs fn and closes the connection on every path.
// Errors from fn are classified as query errors.
func (p *Provider) withConn(ctx context.Context, fn func(*sqlx.DB) error) error {
	db, err := p.Connect(ctx)
	if err != nil {
		return err
	}
	defer closeDB(p.logger, db)

	return queryError(fn(db))
}

// withTx executes a function within a transaction on a fresh connection.
// It automatically handles begin, rollback on error, and commit on success.
func (p *Provider) withTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	return p.withConn(ctx, func(db *sqlx.DB) error {
		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return connectionError(errors.Wrap(err, "failed to begin transaction"))
		}
		defer func() {
			if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				p.logger.Error("failed to rollback transaction", "error", err)
			}
		}()

		if err := fn(tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return errors.Wrap(err, "failed to commit transaction")
		}
		return nil
	})
}

// rowsAffected reads the affected row count from an exec result
func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return n, nil
}
