package database

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// connectionError classifies err as a connection failure
func connectionError(err error) error {
	if err == nil || errors.Is(err, models.ErrConnection) {
		return err
	}
	return fmt.Errorf("%w: %w", models.ErrConnection, err)
}

// queryError classifies err as a statement failure unless it already carries a kind
func queryError(err error) error {
	if err == nil || errors.Is(err, models.ErrConnection) || errors.Is(err, models.ErrQuery) {
		return err
	}
	return fmt.Errorf("%w: %w", models.ErrQuery, err)
}
