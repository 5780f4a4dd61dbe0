package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the menu and CLI boundary. Lower layers wrap these
// so callers can classify failures with errors.Is.
var (
	// ErrConnection indicates the store is unreachable or rejected the credentials
	ErrConnection = errors.New("connection error")

	// ErrQuery indicates a statement, scan or commit failed
	ErrQuery = errors.New("query error")

	// ErrIO indicates an import source could not be opened or read
	ErrIO = errors.New("io error")

	// ErrValidation indicates malformed user input, such as a non-numeric score
	ErrValidation = errors.New("validation error")
)

var (
	// ErrMalformedRow indicates an import row with fewer than two fields
	ErrMalformedRow = fmt.Errorf("%w: row must have at least two fields", ErrIO)

	// ErrUserNotFound indicates no game user has the requested username
	ErrUserNotFound = errors.New("user not found")
)
