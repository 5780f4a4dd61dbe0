package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/thenoetrevino/phonebook/internal/models"
)

const selectUserID = `SELECT id FROM users WHERE username = ?`

// GameRepo issues the users and user_scores statements
type GameRepo struct {
	provider *Provider
}

// CreateUser inserts a new user and returns the store-generated id.
// A duplicate username fails with models.ErrQuery.
func (r *GameRepo) CreateUser(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.provider.withTx(ctx, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &id,
			tx.Rebind(`INSERT INTO users (username) VALUES (?) RETURNING id`), username)
	})
	if err != nil {
		return 0, errors.Wrap(err, "users: create")
	}

	r.provider.logger.Info("game user created", "username", username, "id", id)
	return id, nil
}

// GetUserID looks up a user by exact username. Returns models.ErrUserNotFound
// when no row matches.
func (r *GameRepo) GetUserID(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.provider.withConn(ctx, func(db *sqlx.DB) error {
		err := db.GetContext(ctx, &id, db.Rebind(selectUserID), username)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrUserNotFound
		}
		return err
	})
	if errors.Is(err, models.ErrUserNotFound) {
		return 0, models.ErrUserNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "users: lookup")
	}
	return id, nil
}

// GetOrCreateUser resolves username to an id, creating the user when absent.
// The lookup and the conditional insert share one transaction, and the insert
// is ON CONFLICT DO NOTHING, so a concurrent creator cannot produce a
// duplicate: the loser re-reads the winner's row.
func (r *GameRepo) GetOrCreateUser(ctx context.Context, username string) (int64, bool, error) {
	var (
		id      int64
		created bool
	)
	err := r.provider.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &id, tx.Rebind(selectUserID), username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		err = tx.GetContext(ctx, &id, tx.Rebind(
			`INSERT INTO users (username) VALUES (?) ON CONFLICT (username) DO NOTHING RETURNING id`,
		), username)
		if err == nil {
			created = true
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		// Lost the race to another session
		return tx.GetContext(ctx, &id, tx.Rebind(selectUserID), username)
	})
	if err != nil {
		return 0, false, errors.Wrap(err, "users: get or create")
	}

	r.provider.logger.Debug("game user resolved", "username", username, "id", id, "created", created)
	return id, created, nil
}

// SaveScore appends one row to the score ledger. The user id is not checked
// here; the store's foreign key, if present, rejects unknown users.
func (r *GameRepo) SaveScore(ctx context.Context, entry models.ScoreEntry) error {
	err := r.provider.withTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			tx.Rebind(`INSERT INTO user_scores (user_id, score, level) VALUES (?, ?, ?)`),
			entry.UserID, entry.Score, entry.Level,
		)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "scores: save")
	}

	r.provider.logger.Debug("score saved", "user_id", entry.UserID, "score", entry.Score, "level", entry.Level)
	return nil
}

// GetScoresByUser returns a user's ledger rows in store order
func (r *GameRepo) GetScoresByUser(ctx context.Context, userID int64) ([]models.ScoreEntry, error) {
	scores := []models.ScoreEntry{}
	err := r.provider.withConn(ctx, func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &scores,
			db.Rebind(`SELECT user_id, score, level FROM user_scores WHERE user_id = ?`), userID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "scores: query by user")
	}
	return scores, nil
}
