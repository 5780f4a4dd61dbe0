package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// ContactRepo issues the phonebook statements. Names match exactly: no
// trimming, case-sensitive.
type ContactRepo struct {
	provider *Provider
}

// InsertContact inserts a single contact row
func (r *ContactRepo) InsertContact(ctx context.Context, c models.Contact) error {
	err := r.provider.withTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			tx.Rebind(`INSERT INTO phonebook (name, phone) VALUES (?, ?)`),
			c.Name, c.Phone,
		)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "contacts: insert")
	}

	r.provider.logger.Debug("contact inserted", "name", c.Name)
	return nil
}

// InsertContacts inserts every contact in one transaction. The first failing
// row aborts the rest and nothing is committed.
func (r *ContactRepo) InsertContacts(ctx context.Context, contacts []models.Contact) (int, error) {
	err := r.provider.withTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, tx.Rebind(`INSERT INTO phonebook (name, phone) VALUES (?, ?)`))
		if err != nil {
			return err
		}
		defer func() {
			if err := stmt.Close(); err != nil {
				r.provider.logger.Error("error closing statement", "error", err)
			}
		}()

		for i, c := range contacts {
			if _, err := stmt.ExecContext(ctx, c.Name, c.Phone); err != nil {
				return errors.Wrapf(err, "row %d", i+1)
			}
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "contacts: bulk insert")
	}

	r.provider.logger.Debug("contacts imported", "rows", len(contacts))
	return len(contacts), nil
}

// UpdateContactPhone sets the phone of every row with the given name and
// returns how many rows matched. Zero matches is not an error.
func (r *ContactRepo) UpdateContactPhone(ctx context.Context, name, phone string) (int64, error) {
	var affected int64
	err := r.provider.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			tx.Rebind(`UPDATE phonebook SET phone = ? WHERE name = ?`),
			phone, name,
		)
		if err != nil {
			return err
		}
		affected, err = rowsAffected(res)
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "contacts: update")
	}

	r.provider.logger.Debug("contacts updated", "name", name, "rows", affected)
	return affected, nil
}

// GetAllContacts returns every row in store order
func (r *ContactRepo) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := r.provider.withConn(ctx, func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &contacts, `SELECT name, phone FROM phonebook`)
	})
	if err != nil {
		return nil, errors.Wrap(err, "contacts: query all")
	}
	return contacts, nil
}

// GetContactsByName returns all rows whose name matches exactly; the slice is
// empty, not nil, when nothing matches
func (r *ContactRepo) GetContactsByName(ctx context.Context, name string) ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := r.provider.withConn(ctx, func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &contacts,
			db.Rebind(`SELECT name, phone FROM phonebook WHERE name = ?`), name)
	})
	if err != nil {
		return nil, errors.Wrap(err, "contacts: query by name")
	}
	return contacts, nil
}

// DeleteContacts removes every row with the given name and returns how many
// rows were removed. Zero matches is not an error.
func (r *ContactRepo) DeleteContacts(ctx context.Context, name string) (int64, error) {
	var affected int64
	err := r.provider.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM phonebook WHERE name = ?`), name)
		if err != nil {
			return err
		}
		affected, err = rowsAffected(res)
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "contacts: delete")
	}

	r.provider.logger.Debug("contacts deleted", "name", name, "rows", affected)
	return affected, nil
}
